package sievebench

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/sievebench/sieve"
)

// Logger wraps slog.Logger with benchmark-specific context helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. If handler is nil, a
// text handler to stderr at info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a Logger that writes JSON records to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	}))
}

// WithKind tags the logger with a strategy kind.
func (l *Logger) WithKind(k sieve.Kind) *Logger {
	return &Logger{Logger: l.Logger.With("strategy", k.String())}
}

// WithThreads tags the logger with a worker count.
func (l *Logger) WithThreads(n int) *Logger {
	return &Logger{Logger: l.Logger.With("threads", n)}
}

// LogRun logs the outcome of a benchmark run.
func (l *Logger) LogRun(ctx context.Context, result *Result, err error) {
	if err != nil {
		l.ErrorContext(ctx, "benchmark failed", "error", err)
		return
	}
	l.InfoContext(ctx, "benchmark completed",
		"strategy", result.Kind.String(),
		"threads", result.Threads,
		"elapsed", result.Elapsed,
		"cpu_user", result.Usage.UserTime,
		"cpu_system", result.Usage.SystemTime,
	)
}
