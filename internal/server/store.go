package server

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrInvalidNickname is a validation failure the client can retry.
	ErrInvalidNickname = errors.New("nickname is empty or longer than 20 characters")
)

const maxNicknameLen = 20

var nicknameStrip = regexp.MustCompile(`[^\w\s-]`)

// CleanNickname trims and sanitizes a submitted nickname. Characters outside
// word characters, spaces, and hyphens are stripped before validation.
func CleanNickname(raw string) (string, error) {
	nick := nicknameStrip.ReplaceAllString(raw, "")
	nick = strings.TrimSpace(nick)
	if nick == "" || utf8.RuneCountInString(nick) > maxNicknameLen {
		return "", ErrInvalidNickname
	}
	return nick, nil
}

// LeaderboardEntry is one ranked nickname/score pair.
type LeaderboardEntry struct {
	Nickname string `json:"nickname"`
	Score    int    `json:"score"`
}

// Store persists the shared leaderboard and per-player high scores. The
// leaderboard deduplicates by nickname, keeping the higher score; TopN is
// ordered by score descending with earlier submissions ranking higher on
// ties. Implementations serialize their own writes, independent of the
// per-session locks.
type Store interface {
	Submit(ctx context.Context, userID, nickname string, score int) error
	TopN(ctx context.Context, n int) ([]LeaderboardEntry, error)

	Highscore(ctx context.Context, userID string) (int, error)
	SetHighscore(ctx context.Context, userID string, score int) error

	// Nickname returns the player's last submitted nickname, "" if none.
	Nickname(ctx context.Context, userID string) (string, error)
}
