package server

import (
	"context"
	"sort"
	"sync"
)

type memEntry struct {
	nickname string
	score    int
	userID   string
	seq      int
}

// MemoryStore is an ephemeral Store used in tests and when no durable
// backend is configured. Same policies as the sqlite backend: keep-higher
// dedup by nickname, earlier submission wins score ties.
type MemoryStore struct {
	mu      sync.Mutex
	entries []memEntry
	high    map[string]int
	nicks   map[string]string
	seq     int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		high:  make(map[string]int),
		nicks: make(map[string]string),
	}
}

func (s *MemoryStore) Submit(_ context.Context, userID, nickname string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nicks[userID] = nickname
	for i, e := range s.entries {
		if e.nickname == nickname {
			if score > e.score {
				s.entries[i].score = score
				s.entries[i].userID = userID
			}
			return nil
		}
	}
	s.seq++
	s.entries = append(s.entries, memEntry{nickname: nickname, score: score, userID: userID, seq: s.seq})
	return nil
}

func (s *MemoryStore) TopN(_ context.Context, n int) ([]LeaderboardEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sorted := make([]memEntry, len(s.entries))
	copy(sorted, s.entries)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].score != sorted[j].score {
			return sorted[i].score > sorted[j].score
		}
		return sorted[i].seq < sorted[j].seq
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	entries := make([]LeaderboardEntry, 0, n)
	for _, e := range sorted[:n] {
		entries = append(entries, LeaderboardEntry{Nickname: e.nickname, Score: e.score})
	}
	return entries, nil
}

func (s *MemoryStore) Highscore(_ context.Context, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.high[userID], nil
}

func (s *MemoryStore) SetHighscore(_ context.Context, userID string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if score > s.high[userID] {
		s.high[userID] = score
	}
	return nil
}

func (s *MemoryStore) Nickname(_ context.Context, userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nicks[userID], nil
}
