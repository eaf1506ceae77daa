package fedskew

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with fedskew-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithClients adds a clients field to the logger.
func (l *Logger) WithClients(numClients int) *Logger {
	return &Logger{
		Logger: l.Logger.With("clients", numClients),
	}
}

// WithRows adds a rows field to the logger.
func (l *Logger) WithRows(rows int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rows", rows),
	}
}

// LogOptimalK logs the result of an optimal-k search.
func (l *Logger) LogOptimalK(ctx context.Context, k, maxK int, score float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "optimal-k search failed",
			"max_k", maxK,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "optimal-k search completed",
			"k", k,
			"max_k", maxK,
			"score", score,
		)
	}
}

// LogCandidateSkipped logs a candidate cluster count skipped during the
// optimal-k search. The candidate itself is carried by WithK.
func (l *Logger) LogCandidateSkipped(ctx context.Context, err error) {
	l.DebugContext(ctx, "candidate k skipped",
		"reason", err,
	)
}

// LogDistribute logs a distribution run. Client and row counts are carried
// by WithClients and WithRows.
func (l *Logger) LogDistribute(ctx context.Context, k int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "distribute failed",
			"k", k,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "distribute completed",
			"k", k,
		)
	}
}

// LogEmptyClients warns that some clients received no clusters.
func (l *Logger) LogEmptyClients(ctx context.Context, k, empty int) {
	l.WarnContext(ctx, "clients received no clusters",
		"k", k,
		"empty", empty,
	)
}
