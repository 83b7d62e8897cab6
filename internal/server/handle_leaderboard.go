package server

import (
	"log/slog"
	"net/http"
)

type LeaderboardResponse struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

// handleLeaderboard serves the top-N snapshot. Store failures degrade to
// 503 without touching gameplay.
func handleLeaderboard(store Store, size int, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := store.TopN(r.Context(), size)
		if err != nil {
			logger.Error("fetching leaderboard", "error", err)
			writeError(w, http.StatusServiceUnavailable, "leaderboard unavailable")
			return
		}
		if entries == nil {
			entries = []LeaderboardEntry{}
		}
		writeJSON(w, http.StatusOK, LeaderboardResponse{Leaderboard: entries})
	}
}
