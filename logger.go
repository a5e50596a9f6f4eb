package lloyd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with clustering-specific helpers.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a point count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogIteration logs one update/assign pass.
func (l *Logger) LogIteration(ctx context.Context, iteration int, changed int) {
	l.DebugContext(ctx, "iteration completed",
		"iteration", iteration,
		"changed", changed,
	)
}

// LogEmptyCluster logs a cluster that lost all of its points.
func (l *Logger) LogEmptyCluster(ctx context.Context, id uint32, policy EmptyClusterPolicy) {
	l.WarnContext(ctx, "empty cluster",
		"cluster", id,
		"policy", policy.String(),
	)
}

// LogRun logs a finished (or rejected) clustering run.
func (l *Logger) LogRun(ctx context.Context, iterations int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "k-means rejected",
			"iterations", iterations,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "k-means completed",
			"iterations", iterations,
			"elapsed", elapsed,
		)
	}
}
