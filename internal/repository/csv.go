package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/UnknownOlympus/demeter/internal/models"
)

// RawReader reads rows of the raw active-businesses CSV export.
type RawReader struct {
	reader *csv.Reader
}

// NewRawReader wraps r and skips its header record (a quoted header may span several
// physical lines). Blank lines are ignored throughout. An empty input yields a reader
// that is immediately exhausted.
func NewRawReader(r io.Reader) (*RawReader, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	if _, err := reader.Read(); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	return &RawReader{reader: reader}, nil
}

// Read returns the next raw row, or io.EOF once the input is exhausted. Rows with fewer
// than models.RawColumns fields are rejected with ErrShortRow.
func (rr *RawReader) Read() ([]string, error) {
	record, err := rr.reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read raw row: %w", err)
	}

	if len(record) < models.RawColumns {
		line, _ := rr.reader.FieldPos(0)
		return nil, &LineError{
			Line: line,
			Err:  fmt.Errorf("%w: got %d, want %d", ErrShortRow, len(record), models.RawColumns),
		}
	}

	return record, nil
}
