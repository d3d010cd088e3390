package transport

import (
	"context"
	"log/slog"
	"time"
)

// Logging returns middleware that emits structured log entries for each
// streamed response. The log entry includes method, path, duration,
// request ID (from context), and whether the stream succeeded or failed.
//
// The HTTP status code is not available at the Handler level; for
// status-aware logging use HTTP-level middleware in the adapter.
func Logging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, req *Request, s Sender) error {
			start := time.Now()
			requestID := RequestIDFromContext(ctx)

			err := next.ServeStream(ctx, req, s)

			attrs := []slog.Attr{
				slog.String("request_id", requestID),
				slog.String("method", req.Method),
				slog.String("path", req.Path),
				slog.Duration("duration", time.Since(start)),
			}

			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
				logger.LogAttrs(ctx, slog.LevelError, "stream failed", attrs...)
			} else {
				logger.LogAttrs(ctx, slog.LevelInfo, "stream completed", attrs...)
			}

			return err
		})
	}
}
