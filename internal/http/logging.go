package http

import (
	"context"
	"log/slog"

	"github.com/tgberrios/CRM-sub000/internal/logging"
)

// defaultLogger falls back to the process logger when a handler was
// constructed without one.
func defaultLogger(logger *slog.Logger) *slog.Logger {
	return logging.Default(logger)
}

// handlerLogger resolves the request-scoped logger and tags it with the
// handler name and operation so entries line up with the service layer's
// "service"/"operation" attributes.
func handlerLogger(ctx context.Context, fallback *slog.Logger, handlerName, operation string, attrs ...any) *slog.Logger {
	logger := LoggerFromContext(ctx)
	if logger == nil {
		logger = logging.Default(fallback)
	}

	pairs := make([]any, 0, 4+len(attrs))
	pairs = append(pairs, "handler", handlerName)
	if operation != "" {
		pairs = append(pairs, "operation", operation)
	}
	pairs = append(pairs, attrs...)
	return logger.With(pairs...)
}
