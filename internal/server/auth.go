package server

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/playgeo/closercountry/internal/quiz"
)

var errNoSession = errors.New("no valid session")

// Tokens are 16 random bytes hex encoded.
var tokenPattern = regexp.MustCompile(`^[0-9a-f]{32}$`)

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(auth, "Bearer ")
	if !found || !tokenPattern.MatchString(token) {
		return ""
	}
	return token
}

// sessionFromRequest resolves the Bearer token to a live session. The token
// is returned too, since it is the player's identity for the store.
func sessionFromRequest(sessions *Sessions, r *http.Request) (*quiz.Session, string, error) {
	token := bearerToken(r)
	if token == "" {
		return nil, "", errNoSession
	}
	sess, ok := sessions.Get(token)
	if !ok {
		return nil, "", errNoSession
	}
	return sess, token, nil
}

// sessionFromToken is the query-parameter variant used by SSE and websocket
// endpoints, where headers are not available to browser EventSource clients.
func sessionFromToken(sessions *Sessions, token string) (*quiz.Session, string, error) {
	if !tokenPattern.MatchString(token) {
		return nil, "", errNoSession
	}
	sess, ok := sessions.Get(token)
	if !ok {
		return nil, "", errNoSession
	}
	return sess, token, nil
}
