package api

import (
	"io"
	"log/slog"
	"time"

	"github.com/gorilla/handlers"
)

// AccessLogFormatter writes gorilla/handlers access log entries through slog.
// The writer handed in by handlers.CustomLoggingHandler is ignored.
func AccessLogFormatter(logger *slog.Logger) handlers.LogFormatter {
	return func(_ io.Writer, p handlers.LogFormatterParams) {
		logger.Info("http request",
			slog.String("method", p.Request.Method),
			slog.String("path", p.URL.Path),
			slog.Int("status", p.StatusCode),
			slog.Int("size", p.Size),
			slog.Duration("duration", time.Since(p.TimeStamp)),
			slog.String("remote", p.Request.RemoteAddr),
		)
	}
}
