package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config captures the minimal settings needed to configure a slog logger.
type Config struct {
	// Level is one of debug, info, warn, error.
	Level string
	// Format is json or text.
	Format    string
	AddSource bool
}

// ParseLevel converts textual levels into slog levels, defaulting to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug", "dbg":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a slog.Logger writing to w (stdout when nil).
func New(w io.Writer, cfg Config) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level), AddSource: cfg.AddSource}
	if strings.EqualFold(strings.TrimSpace(cfg.Format), "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// PrintlnLogger adapts slog to loggers that only need Println, such as
// gorilla/handlers' recovery logger.
type PrintlnLogger struct {
	Logger *slog.Logger
}

func (p PrintlnLogger) Println(args ...any) {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Error("recovered from panic", slog.String("detail", strings.TrimSpace(fmt.Sprintln(args...))))
}
