package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/playgeo/closercountry/internal/quiz"
)

type GuessRequest struct {
	BaseCountry   string `json:"baseCountry"`
	ChosenCountry string `json:"chosenCountry"`
	OtherCountry  string `json:"otherCountry"`
}

type MapParams struct {
	Base string `json:"base"`
	T1   string `json:"t1"`
	T2   string `json:"t2"`
}

type GuessResponse struct {
	Correct       bool    `json:"correct"`
	CloserCountry string  `json:"closerCountry"`
	ChosenDist    float64 `json:"chosenDist"`
	OtherDist     float64 `json:"otherDist"`
	Score         int     `json:"score"`
	HighScore     int     `json:"highscore"`
	NewHighScore  bool    `json:"newHighscore,omitempty"`

	GameOver         bool       `json:"gameOver,omitempty"`
	FinalScore       int        `json:"finalScore,omitempty"`
	PromptNickname   bool       `json:"promptNickname,omitempty"`
	ExistingNickname string     `json:"existingNickname,omitempty"`
	MapAvailable     bool       `json:"mapAvailable,omitempty"`
	MapParams        *MapParams `json:"mapParams,omitempty"`
}

func handleGuess(engine *quiz.Engine, sessions *Sessions, store Store, broker *Broker, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, userID, err := sessionFromRequest(sessions, r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or missing session token")
			return
		}

		var req GuessRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.BaseCountry = strings.TrimSpace(req.BaseCountry)
		req.ChosenCountry = strings.TrimSpace(req.ChosenCountry)
		req.OtherCountry = strings.TrimSpace(req.OtherCountry)
		if req.BaseCountry == "" || req.ChosenCountry == "" || req.OtherCountry == "" {
			writeError(w, http.StatusBadRequest, "baseCountry, chosenCountry and otherCountry are required")
			return
		}

		resp, err := applyGuess(r.Context(), engine, sess, userID, store, broker, logger, req)
		if errors.Is(err, quiz.ErrNoActiveRound) {
			writeError(w, http.StatusConflict, "no active round, fetch a new one")
			return
		}
		if errors.Is(err, quiz.ErrUnknownCountry) {
			writeError(w, http.StatusConflict, "countries do not match the active round, fetch a new one")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// applyGuess judges a guess and builds the client payload. Shared by the
// REST handler and the websocket play channel.
func applyGuess(ctx context.Context, engine *quiz.Engine, sess *quiz.Session, userID string, store Store, broker *Broker, logger *slog.Logger, req GuessRequest) (GuessResponse, error) {
	res, err := engine.Judge(sess, req.BaseCountry, req.ChosenCountry, req.OtherCountry)
	if err != nil {
		return GuessResponse{}, err
	}

	resp := GuessResponse{
		Correct:       res.Correct,
		CloserCountry: res.Closer.Name,
		ChosenDist:    quiz.RoundKm(res.ChosenDistanceKm),
		OtherDist:     quiz.RoundKm(res.OtherDistanceKm),
		Score:         res.Score,
		HighScore:     res.HighScore,
		NewHighScore:  res.NewHighScore,
	}

	if res.Correct {
		if res.NewHighScore {
			// Persist eagerly so an abandoned session still keeps its record.
			if err := store.SetHighscore(ctx, userID, res.Score); err != nil {
				logger.Error("persisting highscore", "error", err)
			}
		}
		return resp, nil
	}

	resp.GameOver = true
	resp.FinalScore = res.Score
	resp.PromptNickname = res.PromptNickname
	resp.MapAvailable = true
	resp.MapParams = &MapParams{
		Base: req.BaseCountry,
		T1:   req.ChosenCountry,
		T2:   req.OtherCountry,
	}
	if res.PromptNickname {
		resp.ExistingNickname = sess.Nickname()
	}
	if res.NewHighScore {
		broker.Publish(Event{Type: "high_score", Score: res.Score})
	}
	return resp, nil
}
