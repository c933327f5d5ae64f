package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/demeter/internal/geo"
	"github.com/UnknownOlympus/demeter/internal/metrics"
	"github.com/UnknownOlympus/demeter/internal/models"
	"github.com/UnknownOlympus/demeter/internal/repository"
)

// PreprocessStats summarises one preprocessing run.
type PreprocessStats struct {
	Read     int // raw rows read, header excluded
	Kept     int // rows written to the dataset
	Dropped  int // rows without precise coordinates
	Exported int64
}

// Preprocessor turns the raw CSV export into the cleaned tab-separated dataset and,
// when a sink is configured, mirrors the cleaned records into it.
type Preprocessor struct {
	log     *slog.Logger
	metrics *metrics.Metrics
	sink    repository.Sink
}

// NewPreprocessor creates a Preprocessor. sink may be nil to skip the export.
func NewPreprocessor(log *slog.Logger, metrics *metrics.Metrics, sink repository.Sink) *Preprocessor {
	return &Preprocessor{log: log, metrics: metrics, sink: sink}
}

// Run reads raw rows from in and writes one record per row with precise coordinates to
// out. Rows are processed in a single pass; on failure the records written so far stay
// in out.
func (p *Preprocessor) Run(ctx context.Context, in io.Reader, out io.Writer) (PreprocessStats, error) {
	var stats PreprocessStats
	startTime := time.Now()
	defer func() {
		p.metrics.RunSeconds.WithLabelValues("preprocess").Observe(time.Since(startTime).Seconds())
	}()

	reader, err := repository.NewRawReader(in)
	if err != nil {
		return stats, err
	}
	writer := repository.NewTSVWriter(out)

	var kept []models.Business
	for {
		if err = ctx.Err(); err != nil {
			return stats, errors.Join(err, writer.Flush())
		}

		row, errRead := reader.Read()
		if errors.Is(errRead, io.EOF) {
			break
		}
		if errRead != nil {
			return stats, errors.Join(errRead, writer.Flush())
		}
		stats.Read++
		p.metrics.RowsRead.Inc()

		coords, ok, errCoords := geo.PreciseCoordinates(row[models.RawLocation])
		if errCoords != nil {
			return stats, errors.Join(
				fmt.Errorf("failed to read location of row %d: %w", stats.Read, errCoords), writer.Flush())
		}
		if !ok {
			stats.Dropped++
			p.metrics.RowsDropped.WithLabelValues("imprecise").Inc()
			p.log.DebugContext(ctx, "Row dropped, imprecise coordinates",
				"row", stats.Read, "location", row[models.RawLocation])
			continue
		}

		business := models.NewBusinessFromRaw(row, coords)
		if err = writer.Write(business); err != nil {
			return stats, err
		}
		stats.Kept++
		p.metrics.RecordsWritten.Inc()

		if p.sink != nil {
			kept = append(kept, business)
		}
	}

	if err = writer.Flush(); err != nil {
		return stats, err
	}

	p.log.InfoContext(ctx, "Dataset written", "read", stats.Read, "kept", stats.Kept, "dropped", stats.Dropped)

	if p.sink == nil {
		return stats, nil
	}

	stats.Exported, err = p.sink.ReplaceBusinesses(ctx, kept)
	if err != nil {
		return stats, fmt.Errorf("failed to export businesses: %w", err)
	}
	p.metrics.RecordsExported.Add(float64(stats.Exported))
	p.log.InfoContext(ctx, "Businesses exported", "rows", stats.Exported)

	return stats, nil
}
