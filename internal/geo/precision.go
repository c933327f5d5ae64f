package geo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/UnknownOlympus/demeter/internal/models"
)

// MinDecimalPlaces is how many characters must follow the decimal point of a
// coordinate for it to count as precise.
const MinDecimalPlaces = 4

// ErrMalformedCoordinates is returned when a location looks like a pair but does not
// split into exactly two values.
var ErrMalformedCoordinates = errors.New("malformed coordinate pair")

// PreciseCoordinates extracts the latitude and longitude from a raw "(lat, lon)"
// location. ok is false when the location is not a pair or either value has fewer
// than MinDecimalPlaces characters after its decimal point. The characters are counted,
// not validated as digits.
func PreciseCoordinates(location string) (models.RawCoordinates, bool, error) {
	if !strings.Contains(location, ", ") {
		return models.RawCoordinates{}, false, nil
	}

	parts := strings.Split(strings.Trim(location, "()"), ",")
	if len(parts) != 2 {
		return models.RawCoordinates{}, false, fmt.Errorf("%w: %q", ErrMalformedCoordinates, location)
	}

	for _, dim := range parts {
		if !isPrecise(dim) {
			return models.RawCoordinates{}, false, nil
		}
	}

	return models.RawCoordinates{Latitude: parts[0], Longitude: parts[1]}, true, nil
}

func isPrecise(dim string) bool {
	point := strings.Index(dim, ".")
	if point < 0 {
		return false
	}
	return len(dim)-point > MinDecimalPlaces
}
