package kernel

import (
	"fmt"
	"math"
)

// EarthRadiusMeters is the mean Earth radius used by DistanceMeters.
const EarthRadiusMeters = 6371000.0

// DistanceMeters returns the great-circle distance between a and b using the haversine formula.
// Callers check IsValidPoint first; absent points are not meaningful inputs.
func DistanceMeters(a, b GeoPoint) float64 {
	if a.lon == b.lon && a.lat == b.lat {
		return 0
	}

	dLat := degreesToRadians(b.lat - a.lat)
	dLon := degreesToRadians(b.lon - a.lon)
	rLat1 := degreesToRadians(a.lat)
	rLat2 := degreesToRadians(b.lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

// FormatDistance renders meters for display: whole meters below one kilometre
// ("412 m"), kilometres with two decimals from there on ("1.40 km").
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", int64(math.Round(meters)))
	}
	return fmt.Sprintf("%.2f km", meters/1000)
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
