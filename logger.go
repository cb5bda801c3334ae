package seqgo

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with seqgo-specific helpers so search
// tracing uses consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, a text handler to stderr at Info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))}
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))}
}

// LogSearchStart logs the beginning of a search.
func (l *Logger) LogSearchStart(ctx context.Context, minSupport float64, total int, constraints string) {
	l.InfoContext(ctx, "search started",
		"min_support", minSupport,
		"transactions", total,
		"constraints", constraints,
	)
}

// LogLevel logs the outcome of one mining level.
func (l *Logger) LogLevel(ctx context.Context, level, candidates, frequent int, duration time.Duration) {
	l.InfoContext(ctx, "level completed",
		"level", level,
		"candidates", candidates,
		"frequent", frequent,
		"duration", duration,
	)
}

// LogSearchDone logs search completion.
func (l *Logger) LogSearchDone(ctx context.Context, levels int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"levels", levels,
			"duration", duration,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "search completed",
		"levels", levels,
		"duration", duration,
	)
}

// LogSnapshot logs a snapshot save or load.
func (l *Logger) LogSnapshot(ctx context.Context, op string, levels int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed", "op", op, "error", err)
		return
	}
	l.DebugContext(ctx, "snapshot ok", "op", op, "levels", levels)
}
