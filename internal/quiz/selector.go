package quiz

import (
	"math/rand"
	"sync"

	"github.com/playgeo/closercountry/internal/atlas"
)

// Engine selects rounds and judges guesses against a shared read-only
// catalog. One Engine serves all sessions; the rng has its own lock since
// math/rand sources are not goroutine safe.
type Engine struct {
	catalog *atlas.Catalog
	window  int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewEngine creates an engine over catalog. window bounds how many recent
// base countries are excluded from selection per session.
func NewEngine(catalog *atlas.Catalog, window int, seed int64) *Engine {
	if window < 0 {
		window = 0
	}
	return &Engine{
		catalog: catalog,
		window:  window,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (e *Engine) intn(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Intn(n)
}

// NextRound draws a base country uniformly at random, excluding the
// session's recent bases, then two distinct candidates from the rest of the
// catalog. If the recency exclusion would leave fewer than 3 eligible
// countries, the oldest exclusions are dropped first rather than failing.
//
// A session in GameOver is reset: score back to zero, high score kept.
func (e *Engine) NextRound(s *Session) (Round, error) {
	if e.catalog.Len() < 3 {
		return Round{}, ErrInsufficientCatalog
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateGameOver {
		s.resetLocked()
	}

	excluded := s.recent
	for e.catalog.Len()-len(excluded) < 3 && len(excluded) > 0 {
		excluded = excluded[1:]
	}
	exclSet := make(map[string]bool, len(excluded))
	for _, name := range excluded {
		exclSet[name] = true
	}

	eligible := make([]int, 0, e.catalog.Len())
	for i := 0; i < e.catalog.Len(); i++ {
		if !exclSet[e.catalog.At(i).Name] {
			eligible = append(eligible, i)
		}
	}

	base := e.catalog.At(eligible[e.intn(len(eligible))])

	others := make([]int, 0, e.catalog.Len()-1)
	for i := 0; i < e.catalog.Len(); i++ {
		if e.catalog.At(i).Name != base.Name {
			others = append(others, i)
		}
	}
	ai := e.intn(len(others))
	bi := e.intn(len(others) - 1)
	if bi >= ai {
		bi++
	}

	round := Round{
		Base:       base,
		CandidateA: e.catalog.At(others[ai]),
		CandidateB: e.catalog.At(others[bi]),
	}

	s.current = &round
	s.state = StateRoundActive
	s.recent = append(s.recent, base.Name)
	if len(s.recent) > e.window {
		s.recent = s.recent[len(s.recent)-e.window:]
	}

	return round, nil
}
