package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	textFormat = "text"
	jsonFormat = "json"
)

// createHandler builds a slog.Handler from level/format strings.
func createHandler(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := parseLevel(logLevel)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(logFormat) {
	case jsonFormat:
		return slog.NewJSONHandler(w, opts), nil
	case textFormat:
		return slog.NewTextHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", logFormat)
	}
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", level)
	}
}
