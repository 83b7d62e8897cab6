package server

import (
	"errors"
	"log/slog"
	"net/http"
)

type NicknameRequest struct {
	Nickname string `json:"nickname"`
}

type NicknameResponse struct {
	Success     bool               `json:"success"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

func handleNickname(sessions *Sessions, store Store, size int, broker *Broker, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, userID, err := sessionFromRequest(sessions, r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or missing session token")
			return
		}

		var req NicknameRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		// Validate before consuming the pending score, so a bad nickname
		// can be corrected and resubmitted.
		nickname, err := CleanNickname(req.Nickname)
		if errors.Is(err, ErrInvalidNickname) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		score, ok := sess.TakeFinalScore()
		if !ok {
			writeError(w, http.StatusBadRequest, "no score available for submission")
			return
		}

		if err := store.Submit(r.Context(), userID, nickname, score); err != nil {
			logger.Error("submitting leaderboard entry", "error", err)
			// Put the score back so the player can retry the submission.
			sess.RestoreFinalScore(score)
			writeError(w, http.StatusServiceUnavailable, "leaderboard unavailable")
			return
		}
		sess.SetNickname(nickname)

		broker.Publish(Event{Type: "leaderboard_updated", Nickname: nickname, Score: score})

		entries, err := store.TopN(r.Context(), size)
		if err != nil {
			logger.Error("fetching leaderboard", "error", err)
			entries = nil
		}
		if entries == nil {
			entries = []LeaderboardEntry{}
		}
		writeJSON(w, http.StatusOK, NicknameResponse{Success: true, Leaderboard: entries})
	}
}
