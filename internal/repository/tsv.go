package repository

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/UnknownOlympus/demeter/internal/models"
)

// TSVWriter writes cleaned business records, one tab-separated line per record, with
// no header.
type TSVWriter struct {
	w *bufio.Writer
}

// NewTSVWriter returns a buffered writer on top of w. Call Flush when done.
func NewTSVWriter(w io.Writer) *TSVWriter {
	return &TSVWriter{w: bufio.NewWriter(w)}
}

// Write appends a single record.
func (tw *TSVWriter) Write(b models.Business) error {
	if _, err := tw.w.WriteString(strings.Join(b.Fields(), "\t")); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	if err := tw.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (tw *TSVWriter) Flush() error {
	if err := tw.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush records: %w", err)
	}
	return nil
}

// ReadBusinesses parses every line of r as a business record, preserving input order.
// Each line is trimmed of surrounding whitespace before it is split on tabs. Lines have
// no length limit and the last one may lack its newline.
func ReadBusinesses(r io.Reader) ([]models.Business, error) {
	var businesses []models.Business

	reader := bufio.NewReader(r)
	for line := 1; ; line++ {
		text, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read dataset: %w", err)
		}
		if text == "" && err != nil {
			break
		}

		fields := strings.Split(strings.TrimSpace(text), "\t")
		business, errParse := models.ParseBusiness(fields)
		if errParse != nil {
			return nil, &LineError{Line: line, Err: fmt.Errorf("%w: %w", ErrFieldCount, errParse)}
		}
		businesses = append(businesses, business)

		if err != nil {
			break
		}
	}

	return businesses, nil
}

// FileStore loads the cleaned dataset from a file on disk.
type FileStore struct {
	path string
	log  *slog.Logger
}

// NewFileStore creates a FileStore reading path.
func NewFileStore(path string, log *slog.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

// LoadBusinesses reads the whole dataset into memory. A missing file is reported with
// an error wrapping os.ErrNotExist.
func (fs *FileStore) LoadBusinesses(ctx context.Context) ([]models.Business, error) {
	file, err := os.Open(fs.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	businesses, err := ReadBusinesses(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", fs.path, err)
	}

	fs.log.DebugContext(ctx, "Dataset loaded", "path", fs.path, "businesses", len(businesses))

	return businesses, nil
}
