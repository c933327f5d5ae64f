package geo

import (
	"math"

	"github.com/UnknownOlympus/demeter/internal/models"
)

// DegreesToMiles approximates one degree of longitude in miles around 34° latitude.
const DegreesToMiles = 57

// Reference is the campus the reporter measures proximity from.
var Reference = models.Coordinates{Latitude: 34.126813, Longitude: -118.211904}

// DistanceFrom returns the planar distance in miles between a point and the given
// latitude/longitude. It treats degrees of latitude and longitude as equal length, which
// only holds near 34° latitude; it is not a great-circle distance.
func DistanceFrom(point models.Coordinates, latitude, longitude float64) float64 {
	latDiff := point.Latitude - latitude
	lonDiff := point.Longitude - longitude
	// the conversions force each square to be rounded, keeping the sum unfused
	coordDist := math.Sqrt(float64(latDiff*latDiff) + float64(lonDiff*lonDiff))
	return coordDist * DegreesToMiles
}
