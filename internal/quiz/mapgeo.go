package quiz

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/playgeo/closercountry/internal/atlas"
)

// GameOverGeometry assembles the map payload for a lost round: one styled
// shape per country, centroid markers, and a line from the base to each
// candidate annotated with the judged distance. The distances come straight
// from the GameOver record so the map never disagrees with the verdict.
func GameOverGeometry(g GameOver) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	colors := []struct {
		country atlas.Country
		color   string
	}{
		{g.Base, "dodgerblue"},
		{g.Chosen, "orangered"},
		{g.Other, "orangered"},
	}

	for _, c := range colors {
		shape := geojson.NewFeature(c.country.Geometry)
		shape.Properties = geojson.Properties{
			"name":         c.country.Name,
			"feature_type": "country_shape",
			"color":        c.color,
		}
		fc.Append(shape)
	}

	for _, c := range colors {
		marker := geojson.NewFeature(orb.Point{c.country.Lng, c.country.Lat})
		marker.Properties = geojson.Properties{
			"name":         c.country.Name,
			"feature_type": "point",
		}
		fc.Append(marker)
	}

	lines := []struct {
		to     atlas.Country
		distKm float64
	}{
		{g.Chosen, g.ChosenDistanceKm},
		{g.Other, g.OtherDistanceKm},
	}
	for _, l := range lines {
		line := geojson.NewFeature(orb.LineString{
			{g.Base.Lng, g.Base.Lat},
			{l.to.Lng, l.to.Lat},
		})
		line.Properties = geojson.Properties{
			"feature_type": "distance_line",
			"distance_km":  RoundKm(l.distKm),
			"pair":         fmt.Sprintf("%s-%s", g.Base.Name, l.to.Name),
		}
		fc.Append(line)
	}

	return fc
}

// RoundKm rounds a distance to one decimal for display payloads.
func RoundKm(km float64) float64 {
	return math.Round(km*10) / 10
}
