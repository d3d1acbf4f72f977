package genebits

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with genebits-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithOp adds an op field naming the operation.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// WithBits adds a bits field with the sequence length in bits.
func (l *Logger) WithBits(bits int) *Logger {
	return &Logger{
		Logger: l.Logger.With("bits", bits),
	}
}

// LogOp logs the outcome of a single operation.
func (l *Logger) LogOp(ctx context.Context, op string, bits int, d time.Duration, err error) {
	log := l.WithOp(op).WithBits(bits)
	if err != nil {
		log.WarnContext(ctx, "operation failed",
			"duration", d,
			"error", err,
		)
	} else {
		log.DebugContext(ctx, "operation completed",
			"duration", d,
		)
	}
}

// LogAnalyze logs a full analysis of one sequence.
func (l *Logger) LogAnalyze(ctx context.Context, bases, genes, mutations int, err error) {
	if err != nil {
		l.WarnContext(ctx, "analysis failed",
			"bases", bases,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "analysis completed",
			"bases", bases,
			"genes", genes,
			"mutations", mutations,
		)
	}
}

// LogBatch logs a batch analysis.
func (l *Logger) LogBatch(ctx context.Context, count, failed int, d time.Duration) {
	if failed > 0 {
		l.WarnContext(ctx, "batch analysis completed with failures",
			"total", count,
			"failed", failed,
			"duration", d,
		)
	} else {
		l.InfoContext(ctx, "batch analysis completed",
			"count", count,
			"duration", d,
		)
	}
}
