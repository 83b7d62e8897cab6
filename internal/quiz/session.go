package quiz

import "sync"

type State string

const (
	StateNoRound     State = "no_round"
	StateRoundActive State = "round_active"
	StateGameOver    State = "game_over"
)

// Session is one player's game state across rounds. All requests for a
// session go through its mutex, so a guess is never judged concurrently
// with a round fetch for the same player.
type Session struct {
	mu sync.Mutex

	state     State
	score     int
	highScore int
	nickname  string

	// recent holds the base countries of the last few rounds, oldest
	// first, bounded by the engine's recency window.
	recent  []string
	current *Round

	// highImproved is set when this run pushed the high score up; cleared
	// when a new run starts.
	highImproved bool

	gameOver *GameOver

	// pendingScore is the final score awaiting nickname submission, nil
	// once consumed.
	pendingScore *int
}

// NewSession creates a session seeded with the player's persisted high
// score and nickname (both zero-valued for first-time players).
func NewSession(highScore int, nickname string) *Session {
	return &Session{
		state:     StateNoRound,
		highScore: highScore,
		nickname:  nickname,
	}
}

// Reset zeroes the score and round history for a fresh run. The high score
// and nickname survive.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Session) resetLocked() {
	s.state = StateNoRound
	s.score = 0
	s.recent = nil
	s.current = nil
	s.highImproved = false
	s.pendingScore = nil
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

func (s *Session) HighScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highScore
}

func (s *Session) Nickname() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nickname
}

func (s *Session) SetNickname(nickname string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nickname = nickname
}

// LastGameOver returns the most recent losing round, if any.
func (s *Session) LastGameOver() (GameOver, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gameOver == nil {
		return GameOver{}, false
	}
	return *s.gameOver, true
}

// TakeFinalScore consumes the final score pending leaderboard submission.
// Returns false if there is none (no game over yet, or already submitted).
func (s *Session) TakeFinalScore() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pendingScore == nil {
		return 0, false
	}
	score := *s.pendingScore
	s.pendingScore = nil
	return score, true
}

// RestoreFinalScore puts a consumed final score back, used when the
// leaderboard write fails and the submission should be retryable.
func (s *Session) RestoreFinalScore(score int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingScore = &score
}
