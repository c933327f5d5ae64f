package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnknownOlympus/demeter/internal/config"
	"github.com/UnknownOlympus/demeter/internal/logger"
	"github.com/UnknownOlympus/demeter/internal/metrics"
	"github.com/UnknownOlympus/demeter/internal/repository"
	"github.com/UnknownOlympus/demeter/internal/service"
)

// main is the entry point of the preprocessor.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment. Stdout is reserved for output.
	log := logger.Setup(cfg.Env, os.Stderr)

	if err := run(ctx, cfg, log); err != nil {
		log.ErrorContext(ctx, "Preprocessing failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	// Create a separate registry for metrics, dumped to a textfile at the end of the run.
	reg := metrics.NewRegistry()
	appMetrics := metrics.NewMetrics(reg)

	// Connect to the export database only when one is configured.
	var sink repository.Sink
	if cfg.Database.Enabled() {
		dtb, err := repository.NewDatabase(ctx, cfg.Database.DSN())
		if err != nil {
			return err
		}
		defer dtb.Close()

		repo := repository.NewPostgres(dtb, log)
		if err = repo.EnsureSchema(ctx); err != nil {
			return err
		}
		sink = repo
	}

	// Open the raw export and truncate the dataset file.
	in, err := os.Open(cfg.RawPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	log.InfoContext(ctx, "Preprocessing started", "input", cfg.RawPath, "output", cfg.OutputPath)

	// Clean the raw rows into the dataset.
	stats, err := service.NewPreprocessor(log, appMetrics, sink).Run(ctx, in, out)
	if err != nil {
		return err
	}

	if err = out.Close(); err != nil {
		return err
	}

	log.InfoContext(ctx, "Preprocessing finished",
		"read", stats.Read, "kept", stats.Kept, "dropped", stats.Dropped, "exported", stats.Exported)

	// Dump the metrics of the run, if requested.
	return metrics.WriteTextfile(cfg.MetricsFile, reg)
}
