package places

import (
	"fmt"
	"math"
)

const (
	earthRadiusMeters = 6371e3
	metersPerMile     = 1609.344
)

// Distance returns the haversine distance between two coordinates in meters.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// FormatDistance renders a distance for display: feet under a tenth of a
// mile, miles otherwise.
func FormatDistance(meters float64) string {
	miles := meters / metersPerMile
	if miles < 0.1 {
		return fmt.Sprintf("%d ft", int(math.Round(meters*3.28084)))
	}
	return fmt.Sprintf("%.1f mi", miles)
}
