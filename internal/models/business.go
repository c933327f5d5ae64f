package models

import (
	"fmt"
	"strconv"
	"strings"
)

// BusinessFields is the number of tab-separated fields in a cleaned business record.
const BusinessFields = 9

// Business is one record of the cleaned dataset. All fields are kept as strings;
// coordinates are parsed on demand. An empty InformalName means the business has no
// "doing business as" name.
type Business struct {
	FormalName   string
	InformalName string
	Address      string
	City         string
	ZipCode      string
	Category     string
	StartDate    string
	Latitude     string
	Longitude    string
}

// Fields returns the record in dataset column order.
func (b Business) Fields() []string {
	return []string{
		b.FormalName,
		b.InformalName,
		b.Address,
		b.City,
		b.ZipCode,
		b.Category,
		b.StartDate,
		b.Latitude,
		b.Longitude,
	}
}

// DisplayName returns the informal name if present, the formal name otherwise.
func (b Business) DisplayName() string {
	if b.InformalName == "" {
		return b.FormalName
	}
	return b.InformalName
}

// Coordinates parses the latitude and longitude of the business. Surrounding
// whitespace is ignored, since the raw "(lat, lon)" split leaves a leading space on
// the longitude.
func (b Business) Coordinates() (Coordinates, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(b.Latitude), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("failed to parse latitude %q: %w", b.Latitude, err)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(b.Longitude), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("failed to parse longitude %q: %w", b.Longitude, err)
	}

	return Coordinates{Latitude: lat, Longitude: lon}, nil
}

// ParseBusiness builds a Business from exactly BusinessFields values.
func ParseBusiness(fields []string) (Business, error) {
	if len(fields) != BusinessFields {
		return Business{}, fmt.Errorf("expected %d fields, got %d", BusinessFields, len(fields))
	}
	return businessFromFields(fields), nil
}

func businessFromFields(fields []string) Business {
	return Business{
		FormalName:   fields[0],
		InformalName: fields[1],
		Address:      fields[2],
		City:         fields[3],
		ZipCode:      fields[4],
		Category:     fields[5],
		StartDate:    fields[6],
		Latitude:     fields[7],
		Longitude:    fields[8],
	}
}

// Match is a business selected by the reporter together with its distance, in miles,
// from the reference point.
type Match struct {
	Business Business
	Distance float64
}
