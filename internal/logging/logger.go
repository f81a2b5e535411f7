package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup initializes the global slog logger: JSON to stdout at the level named
// by LOG_LEVEL (debug, info, warn, error; default info).
func Setup() {
	slog.SetDefault(slog.New(NewStdoutHandler()))
}

// NewStdoutHandler builds the JSON stdout handler. It is installed alone at
// startup and again as the first sink of the fan-out once the store-backed
// handler is attached.
func NewStdoutHandler() slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: Level()})
}

// Level reads LOG_LEVEL from the environment.
func Level() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
