package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnknownOlympus/demeter/internal/config"
	"github.com/UnknownOlympus/demeter/internal/export"
	"github.com/UnknownOlympus/demeter/internal/logger"
	"github.com/UnknownOlympus/demeter/internal/metrics"
	"github.com/UnknownOlympus/demeter/internal/repository"
	"github.com/UnknownOlympus/demeter/internal/service"
)

// main is the entry point of the reporter. It prints the names of full-service
// restaurants within a mile of the campus to stdout.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment. Stdout is reserved for output.
	log := logger.Setup(cfg.Env, os.Stderr)

	if err := run(ctx, cfg, log); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			wd, _ := os.Getwd()
			fmt.Fprintf(os.Stderr, "Working Directory is %s.\nCannot find '%s'; quitting.\n", wd, cfg.DatasetPath)
		}
		log.ErrorContext(ctx, "Report failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	// Create a separate registry for metrics, dumped to a textfile at the end of the run.
	reg := metrics.NewRegistry()
	appMetrics := metrics.NewMetrics(reg)

	// Write the spreadsheet of matches only when a path is configured.
	var exporter service.MatchExporter
	if cfg.ReportXLSX != "" {
		exporter = export.NewXLSX(cfg.ReportXLSX, "")
	}

	// Print the nearby restaurants, in dataset order.
	store := repository.NewFileStore(cfg.DatasetPath, log)
	if err := service.NewReporter(log, store, appMetrics, exporter).Run(ctx, os.Stdout); err != nil {
		return err
	}

	// Dump the metrics of the run, if requested.
	return metrics.WriteTextfile(cfg.MetricsFile, reg)
}
