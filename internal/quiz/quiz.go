// Package quiz implements the round engine and scoring arbiter for the
// closer-country game: non-repeating round selection, authoritative
// great-circle distances, guess judging, and per-session score state.
package quiz

import (
	"errors"

	"github.com/playgeo/closercountry/internal/atlas"
)

var (
	// ErrInsufficientCatalog means the catalog cannot produce a round.
	// Startup validates the catalog, so this is unexpected at runtime.
	ErrInsufficientCatalog = errors.New("catalog has fewer than 3 countries")

	// ErrNoActiveRound means a guess arrived with no round outstanding.
	// The client should fetch a new round.
	ErrNoActiveRound = errors.New("no active round")

	// ErrUnknownCountry means the submitted names do not match the active
	// round's candidates (stale or tampered payload).
	ErrUnknownCountry = errors.New("country does not match the active round")
)

// Round is one base country plus the two candidates the player chooses
// between. All three are distinct.
type Round struct {
	Base       atlas.Country
	CandidateA atlas.Country
	CandidateB atlas.Country
}

// GuessResult is the arbiter's verdict on a single guess.
type GuessResult struct {
	Correct          bool
	Closer           atlas.Country
	ChosenDistanceKm float64
	OtherDistanceKm  float64
	Score            int
	HighScore        int
	NewHighScore     bool
	GameOver         bool
	PromptNickname   bool
}

// GameOver captures the losing round so the map payload can reuse the
// distances the arbiter judged with, never recomputed values.
type GameOver struct {
	Base             atlas.Country
	Chosen           atlas.Country
	Other            atlas.Country
	ChosenDistanceKm float64
	OtherDistanceKm  float64
	FinalScore       int
}
