package quiz

import (
	"math"

	"github.com/playgeo/closercountry/internal/atlas"
)

// Mean Earth radius in kilometers.
const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between the centroids of a
// and b, via the haversine formula. Symmetric, and zero for a == b.
func DistanceKm(a, b atlas.Country) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
