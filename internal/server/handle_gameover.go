package server

import (
	"net/http"

	"github.com/playgeo/closercountry/internal/quiz"
)

// handleGameOver serves the map geometry bundle for the losing round. The
// query parameters must name the round the session actually lost; the
// distances in the payload are the ones the arbiter judged with.
func handleGameOver(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _, err := sessionFromRequest(sessions, r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or missing session token")
			return
		}

		base := r.URL.Query().Get("base")
		t1 := r.URL.Query().Get("t1")
		t2 := r.URL.Query().Get("t2")
		if base == "" || t1 == "" || t2 == "" {
			writeError(w, http.StatusBadRequest, "base, t1 and t2 are required")
			return
		}

		g, ok := sess.LastGameOver()
		if !ok {
			writeError(w, http.StatusNotFound, "no finished game for this session")
			return
		}
		if base != g.Base.Name || !sameCandidates(t1, t2, g) {
			writeError(w, http.StatusNotFound, "countries do not match the last game")
			return
		}

		writeJSON(w, http.StatusOK, quiz.GameOverGeometry(g))
	}
}

func sameCandidates(t1, t2 string, g quiz.GameOver) bool {
	return (t1 == g.Chosen.Name && t2 == g.Other.Name) ||
		(t1 == g.Other.Name && t2 == g.Chosen.Name)
}
