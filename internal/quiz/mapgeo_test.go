package quiz

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGameOverGeometry(t *testing.T) {
	cat := loadCatalog(t, scatterFixture)
	base := mustLookup(t, cat, "Alpha")
	chosen := mustLookup(t, cat, "Delta")
	other := mustLookup(t, cat, "Bravo")

	g := GameOver{
		Base:             base,
		Chosen:           chosen,
		Other:            other,
		ChosenDistanceKm: DistanceKm(base, chosen),
		OtherDistanceKm:  DistanceKm(base, other),
		FinalScore:       4,
	}

	fc := GameOverGeometry(g)

	// Three shapes, three centroid markers, two distance lines.
	require.Len(t, fc.Features, 8)

	byType := map[string]int{}
	for _, f := range fc.Features {
		byType[f.Properties.MustString("feature_type", "")]++
	}
	require.Equal(t, 3, byType["country_shape"])
	require.Equal(t, 3, byType["point"])
	require.Equal(t, 2, byType["distance_line"])

	// The base shape is styled differently from the candidates.
	colors := map[string]string{}
	for _, f := range fc.Features {
		if f.Properties.MustString("feature_type", "") == "country_shape" {
			colors[f.Properties.MustString("name", "")] = f.Properties.MustString("color", "")
		}
	}
	require.Equal(t, "dodgerblue", colors["Alpha"])
	require.Equal(t, "orangered", colors["Delta"])
	require.Equal(t, "orangered", colors["Bravo"])

	// Lines carry the judged distances, rounded for display, never
	// recomputed ones.
	lineDists := map[string]float64{}
	for _, f := range fc.Features {
		if f.Properties.MustString("feature_type", "") == "distance_line" {
			dist, ok := f.Properties["distance_km"].(float64)
			require.True(t, ok)
			lineDists[f.Properties.MustString("pair", "")] = dist
		}
	}
	require.Equal(t, RoundKm(g.ChosenDistanceKm), lineDists["Alpha-Delta"])
	require.Equal(t, RoundKm(g.OtherDistanceKm), lineDists["Alpha-Bravo"])
}

func TestGameOverGeometryMarshalsAsFeatureCollection(t *testing.T) {
	cat := loadCatalog(t, tieFixture)
	g := GameOver{
		Base:   mustLookup(t, cat, "Alpha"),
		Chosen: mustLookup(t, cat, "Bravo"),
		Other:  mustLookup(t, cat, "Charlie"),
	}

	data, err := json.Marshal(GameOverGeometry(g))
	require.NoError(t, err)

	var decoded struct {
		Type     string            `json:"type"`
		Features []json.RawMessage `json:"features"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "FeatureCollection", decoded.Type)
	require.Len(t, decoded.Features, 8)
}
