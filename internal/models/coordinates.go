package models

// Coordinates represents a geographical point defined by its latitude and longitude.
type Coordinates struct {
	Latitude  float64 // Latitude of the geographical point.
	Longitude float64 // Longitude of the geographical point.
}

// RawCoordinates holds a latitude/longitude pair exactly as it appeared in the source
// location column. The strings are kept verbatim so the cleaned dataset preserves the
// original formatting.
type RawCoordinates struct {
	Latitude  string
	Longitude string
}
