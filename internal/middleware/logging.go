package middleware

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// loggerKey is the key used to store the logger in the context.
// Using a custom type prevents collisions.
type contextKey string

const loggerKey = contextKey("logger")

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerFromCtx retrieves the command-scoped logger from the context.
// It returns the default logger if none is found.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey).(*slog.Logger)
	if !ok || logger == nil {
		return slog.Default()
	}
	return logger
}

// CommandLogging runs fn with a logger enriched with an operation ID and the
// command name, then logs completion with the elapsed time.
func CommandLogging(ctx context.Context, baseLogger *slog.Logger, command string, fn func(ctx context.Context)) {
	start := time.Now()
	opID := uuid.NewString()

	cmdLogger := baseLogger.With(
		slog.String("op_id", opID),
		slog.String("command", command),
	)

	fn(WithLogger(ctx, cmdLogger))

	cmdLogger.Debug("Command completed",
		slog.Duration("latency", time.Since(start)),
	)
}

// NewLogger builds the process logger for the given format ("json" or "text") and level.
func NewLogger(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
