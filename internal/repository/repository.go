package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/UnknownOlympus/demeter/internal/models"
)

// Source loads the cleaned business dataset.
type Source interface {
	LoadBusinesses(ctx context.Context) ([]models.Business, error)
}

// Sink receives the cleaned business dataset once preprocessing finished.
type Sink interface {
	ReplaceBusinesses(ctx context.Context, businesses []models.Business) (int64, error)
}

// Errors describing malformed input lines.
var (
	ErrShortRow   = errors.New("raw row has too few columns")
	ErrFieldCount = errors.New("record has an unexpected number of fields")
)

// LineError reports which input line could not be used.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
