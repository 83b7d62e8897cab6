package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/playgeo/closercountry/internal/quiz"
)

type wsCommand struct {
	Action        string `json:"action"` // "round" or "guess"
	BaseCountry   string `json:"baseCountry,omitempty"`
	ChosenCountry string `json:"chosenCountry,omitempty"`
	OtherCountry  string `json:"otherCountry,omitempty"`
}

type wsRound struct {
	Type  string        `json:"type"` // "round"
	Round RoundResponse `json:"round"`
}

type wsResult struct {
	Type   string        `json:"type"` // "result"
	Result GuessResponse `json:"result"`
}

type wsError struct {
	Type  string `json:"type"` // "error"
	Error string `json:"error"`
}

// handleWSPlay carries the round/guess loop over a single websocket
// connection, as an alternative to the REST surface. Both paths run through
// the same engine, so the session serializes them either way.
func handleWSPlay(logger *slog.Logger, engine *quiz.Engine, sessions *Sessions, store Store, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, userID, err := sessionFromToken(sessions, r.URL.Query().Get("token"))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid session token")
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			logger.Error("websocket accept failed", "error", err)
			return
		}
		defer conn.CloseNow()

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Minute)
		defer cancel()

		for {
			var cmd wsCommand
			if err := wsjson.Read(ctx, conn, &cmd); err != nil {
				logger.Debug("websocket read ended", "error", err)
				return
			}

			var reply any
			switch cmd.Action {
			case "round":
				round, err := engine.NextRound(sess)
				if err != nil {
					reply = wsError{Type: "error", Error: "not enough countries to play"}
					break
				}
				reply = wsRound{Type: "round", Round: buildRoundResponse(round, sess)}

			case "guess":
				req := GuessRequest{
					BaseCountry:   strings.TrimSpace(cmd.BaseCountry),
					ChosenCountry: strings.TrimSpace(cmd.ChosenCountry),
					OtherCountry:  strings.TrimSpace(cmd.OtherCountry),
				}
				resp, err := applyGuess(ctx, engine, sess, userID, store, broker, logger, req)
				switch {
				case errors.Is(err, quiz.ErrNoActiveRound):
					reply = wsError{Type: "error", Error: "no active round"}
				case errors.Is(err, quiz.ErrUnknownCountry):
					reply = wsError{Type: "error", Error: "countries do not match the active round"}
				case err != nil:
					reply = wsError{Type: "error", Error: "internal error"}
				default:
					reply = wsResult{Type: "result", Result: resp}
				}

			default:
				reply = wsError{Type: "error", Error: "unknown action"}
			}

			if err := wsjson.Write(ctx, conn, reply); err != nil {
				logger.Debug("websocket write failed", "error", err)
				return
			}
		}
	}
}
