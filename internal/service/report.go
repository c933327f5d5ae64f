package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/demeter/internal/geo"
	"github.com/UnknownOlympus/demeter/internal/metrics"
	"github.com/UnknownOlympus/demeter/internal/models"
	"github.com/UnknownOlympus/demeter/internal/repository"
)

const (
	// RestaurantCategory is the exact NAICS description of a full-service restaurant.
	RestaurantCategory = "Full-service restaurants"
	// NearbyMiles is the exclusive upper bound on the distance of a nearby business.
	NearbyMiles = 1.0
)

// MatchExporter receives the reporter's matches once the run completed.
type MatchExporter interface {
	WriteMatches(matches []models.Match) error
}

// IsRestaurant reports whether the business is categorized as a full-service restaurant.
// The comparison is exact.
func IsRestaurant(b models.Business) bool {
	return b.Category == RestaurantCategory
}

// IsNearbyRestaurant reports whether b is a restaurant strictly closer than NearbyMiles
// to ref, and returns its distance. The distance is computed for every business, so a
// record with unparsable coordinates is an error even when it is not a restaurant.
func IsNearbyRestaurant(b models.Business, ref models.Coordinates) (bool, float64, error) {
	coords, err := b.Coordinates()
	if err != nil {
		return false, 0, err
	}

	distance := geo.DistanceFrom(coords, ref.Latitude, ref.Longitude)

	return IsRestaurant(b) && distance < NearbyMiles, distance, nil
}

// Reporter prints the display names of restaurants near a reference point.
type Reporter struct {
	log      *slog.Logger
	source   repository.Source
	metrics  *metrics.Metrics
	exporter MatchExporter
	ref      models.Coordinates
}

// NewReporter creates a Reporter measuring from geo.Reference. exporter may be nil.
func NewReporter(
	log *slog.Logger,
	source repository.Source,
	metrics *metrics.Metrics,
	exporter MatchExporter,
) *Reporter {
	return &Reporter{
		log:      log,
		source:   source,
		metrics:  metrics,
		exporter: exporter,
		ref:      geo.Reference,
	}
}

// Run loads every business and writes the display name of each nearby restaurant to w,
// one per line, in dataset order.
func (r *Reporter) Run(ctx context.Context, w io.Writer) error {
	startTime := time.Now()
	defer func() {
		r.metrics.RunSeconds.WithLabelValues("report").Observe(time.Since(startTime).Seconds())
	}()

	businesses, err := r.source.LoadBusinesses(ctx)
	if err != nil {
		return err
	}
	r.metrics.BusinessesRead.Add(float64(len(businesses)))

	var matches []models.Match
	for idx, business := range businesses {
		nearby, distance, errFilter := IsNearbyRestaurant(business, r.ref)
		if errFilter != nil {
			return fmt.Errorf("failed to filter business %d: %w", idx+1, errFilter)
		}
		if !nearby {
			continue
		}

		if _, err = fmt.Fprintln(w, business.DisplayName()); err != nil {
			return fmt.Errorf("failed to print business name: %w", err)
		}
		r.metrics.Matches.Inc()
		matches = append(matches, models.Match{Business: business, Distance: distance})
	}

	r.log.InfoContext(ctx, "Report finished", "businesses", len(businesses), "matches", len(matches))

	if r.exporter == nil {
		return nil
	}
	if err = r.exporter.WriteMatches(matches); err != nil {
		return fmt.Errorf("failed to export matches: %w", err)
	}

	return nil
}
