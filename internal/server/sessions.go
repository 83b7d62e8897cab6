package server

import (
	"crypto/rand"
	"encoding/hex"
	"sync"

	"github.com/playgeo/closercountry/internal/quiz"
)

// Sessions maps bearer tokens to live game sessions. The token doubles as
// the player's durable identity for high-score persistence, so a returning
// token can be rebound to a fresh session after a restart.
type Sessions struct {
	mu      sync.RWMutex
	byToken map[string]*quiz.Session
}

func NewSessions() *Sessions {
	return &Sessions{byToken: make(map[string]*quiz.Session)}
}

// Create registers sess under a new random token and returns the token.
func (s *Sessions) Create(sess *quiz.Session) string {
	token := newToken()
	s.mu.Lock()
	s.byToken[token] = sess
	s.mu.Unlock()
	return token
}

// Put registers sess under an existing token (returning player).
func (s *Sessions) Put(token string, sess *quiz.Session) {
	s.mu.Lock()
	s.byToken[token] = sess
	s.mu.Unlock()
}

func (s *Sessions) Get(token string) (*quiz.Session, bool) {
	s.mu.RLock()
	sess, ok := s.byToken[token]
	s.mu.RUnlock()
	return sess, ok
}

func newToken() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
