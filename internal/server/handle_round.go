package server

import (
	"errors"
	"net/http"

	"github.com/playgeo/closercountry/internal/quiz"
)

type CountryInfo struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type RoundResponse struct {
	BaseCountry CountryInfo `json:"baseCountry"`
	Target1     CountryInfo `json:"target1"`
	Target2     CountryInfo `json:"target2"`
	Score       int         `json:"score"`
	HighScore   int         `json:"highscore"`
}

func handleRound(engine *quiz.Engine, sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _, err := sessionFromRequest(sessions, r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or missing session token")
			return
		}

		round, err := engine.NextRound(sess)
		if errors.Is(err, quiz.ErrInsufficientCatalog) {
			writeError(w, http.StatusInternalServerError, "not enough countries to play")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, buildRoundResponse(round, sess))
	}
}

func buildRoundResponse(round quiz.Round, sess *quiz.Session) RoundResponse {
	return RoundResponse{
		BaseCountry: CountryInfo{Name: round.Base.Name, Code: round.Base.Code},
		Target1:     CountryInfo{Name: round.CandidateA.Name, Code: round.CandidateA.Code},
		Target2:     CountryInfo{Name: round.CandidateB.Name, Code: round.CandidateB.Code},
		Score:       sess.Score(),
		HighScore:   sess.HighScore(),
	}
}
