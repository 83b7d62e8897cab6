package server

import (
	"log/slog"
	"net/http"

	"github.com/playgeo/closercountry/internal/quiz"
)

type StartResponse struct {
	Token     string `json:"token"`
	HighScore int    `json:"highscore"`
	Nickname  string `json:"nickname,omitempty"`
}

// handleStart begins a fresh run. A valid Bearer token resets that player's
// session (score to zero, high score kept); an unknown but well-formed token
// is a returning player whose high score is rebuilt from the store, e.g.
// after a server restart. No token mints a new identity.
func handleStart(sessions *Sessions, store Store, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sess, token, err := sessionFromRequest(sessions, r); err == nil {
			sess.Reset()
			writeJSON(w, http.StatusOK, StartResponse{
				Token:     token,
				HighScore: sess.HighScore(),
				Nickname:  sess.Nickname(),
			})
			return
		}

		if token := bearerToken(r); token != "" {
			high, err := store.Highscore(r.Context(), token)
			if err != nil {
				logger.Error("loading highscore", "error", err)
				high = 0
			}
			nickname, err := store.Nickname(r.Context(), token)
			if err != nil {
				logger.Error("loading nickname", "error", err)
				nickname = ""
			}
			sess := quiz.NewSession(high, nickname)
			sessions.Put(token, sess)
			writeJSON(w, http.StatusOK, StartResponse{
				Token:     token,
				HighScore: high,
				Nickname:  nickname,
			})
			return
		}

		sess := quiz.NewSession(0, "")
		token := sessions.Create(sess)
		writeJSON(w, http.StatusOK, StartResponse{Token: token})
	}
}
