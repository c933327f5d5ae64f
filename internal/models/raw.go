package models

// Column indices of the raw active-businesses export.
const (
	RawAccountNumber = iota
	RawBusinessName
	RawDBAName
	RawStreetAddress
	RawCity
	RawZipCode
	RawLocationDescription
	RawMailingAddress
	RawMailingCity
	RawMailingZipCode
	RawNAICS
	RawNAICSDescription
	RawCouncilDistrict
	RawStartDate
	RawEndDate
	RawLocation

	// RawColumns is the number of columns a raw row must carry.
	RawColumns
)

// projectedColumns lists the raw columns copied into a Business, in output order.
var projectedColumns = [...]int{
	RawBusinessName,
	RawDBAName,
	RawStreetAddress,
	RawCity,
	RawZipCode,
	RawNAICSDescription,
	RawStartDate,
}

// NewBusinessFromRaw projects an accepted raw row onto a Business. The selected columns
// and the coordinate strings are copied verbatim. The row must have at least RawColumns
// fields.
func NewBusinessFromRaw(row []string, coords RawCoordinates) Business {
	fields := make([]string, 0, BusinessFields)
	for _, idx := range projectedColumns {
		fields = append(fields, row[idx])
	}
	fields = append(fields, coords.Latitude, coords.Longitude)

	return businessFromFields(fields)
}
