package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger = slog.Default()

// Init replaces the default logger with a JSON handler for
// production-ready structured logging.
func Init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler).With("service", "cvfast-api")
}
