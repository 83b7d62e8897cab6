package quiz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextRoundDistinctTriples(t *testing.T) {
	cat := loadCatalog(t, scatterFixture)
	engine := NewEngine(cat, 3, 1)
	sess := NewSession(0, "")

	for i := 0; i < 200; i++ {
		round, err := engine.NextRound(sess)
		require.NoError(t, err)

		require.NotEqual(t, round.Base.Name, round.CandidateA.Name)
		require.NotEqual(t, round.Base.Name, round.CandidateB.Name)
		require.NotEqual(t, round.CandidateA.Name, round.CandidateB.Name)

		// Clear the round so the next fetch doesn't sit on an active one.
		_, err = engine.Judge(sess, round.Base.Name, closerOf(round), furtherOf(round))
		require.NoError(t, err)
	}
}

func TestNextRoundAvoidsRecentBases(t *testing.T) {
	cat := loadCatalog(t, scatterFixture)
	const window = 2
	engine := NewEngine(cat, window, 42)
	sess := NewSession(0, "")

	var recent []string
	for i := 0; i < 100; i++ {
		round, err := engine.NextRound(sess)
		require.NoError(t, err)

		require.NotContains(t, recent, round.Base.Name,
			"base repeated within the recency window")

		recent = append(recent, round.Base.Name)
		if len(recent) > window {
			recent = recent[1:]
		}

		_, err = engine.Judge(sess, round.Base.Name, closerOf(round), furtherOf(round))
		require.NoError(t, err)
	}
}

func TestNextRoundRelaxesRecencyOnSmallCatalog(t *testing.T) {
	// Three countries with a window of three: strict recency exclusion
	// would leave nothing eligible, so the oldest exclusions must drop.
	cat := loadCatalog(t, tieFixture)
	engine := NewEngine(cat, 3, 7)
	sess := NewSession(0, "")

	for i := 0; i < 50; i++ {
		round, err := engine.NextRound(sess)
		require.NoError(t, err)
		require.NotEqual(t, round.CandidateA.Name, round.CandidateB.Name)

		_, err = engine.Judge(sess, round.Base.Name, closerOf(round), furtherOf(round))
		require.NoError(t, err)
	}
}

func TestNextRoundInsufficientCatalog(t *testing.T) {
	small := `{
"type": "FeatureCollection",
"features": [
{"type":"Feature","properties":{"name":"Alpha","iso_a2":"AA","type":"Country"},"geometry":{"type":"Polygon","coordinates":[[[-1,-1],[1,-1],[1,1],[-1,1],[-1,-1]]]}},
{"type":"Feature","properties":{"name":"Bravo","iso_a2":"BB","type":"Country"},"geometry":{"type":"Polygon","coordinates":[[[9,-1],[11,-1],[11,1],[9,1],[9,-1]]]}}
]
}`
	cat := loadCatalog(t, small)
	engine := NewEngine(cat, 3, 1)

	_, err := engine.NextRound(NewSession(0, ""))
	require.ErrorIs(t, err, ErrInsufficientCatalog)
}

// closerOf and furtherOf pick the candidate nearer/farther to the base, so
// tests can force a correct or incorrect guess.
func closerOf(r Round) string {
	if DistanceKm(r.Base, r.CandidateA) <= DistanceKm(r.Base, r.CandidateB) {
		return r.CandidateA.Name
	}
	return r.CandidateB.Name
}

func furtherOf(r Round) string {
	if DistanceKm(r.Base, r.CandidateA) <= DistanceKm(r.Base, r.CandidateB) {
		return r.CandidateB.Name
	}
	return r.CandidateA.Name
}
