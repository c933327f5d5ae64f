package logger

import (
	"io"
	"log/slog"
)

// Constants for different environment types.
const (
	EnvLocal = "local"
	EnvDev   = "development"
	EnvProd  = "production"
)

// Setup initializes and returns a logger based on the environment provided.
// Records are written to w; the binaries pass os.Stderr because stdout carries the report.
func Setup(env string, w io.Writer) *slog.Logger {
	var log *slog.Logger

	switch env {
	case EnvLocal:
		log = slog.New(
			slog.NewTextHandler(w, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case EnvDev:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
			}),
		)
	case EnvProd:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level:       slog.LevelWarn,
				AddSource:   false,
				ReplaceAttr: dropTime,
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level:       slog.LevelError,
				AddSource:   false,
				ReplaceAttr: dropTime,
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}

func dropTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
