package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/ecomind-backend/internal/config"
)

// redactedKeys are attribute keys that may carry a user's own words:
// interaction notes, text sent for analysis, prompts and raw model output.
// They never reach the log sink.
var redactedKeys = map[string]bool{
	"text":     true,
	"notes":    true,
	"prompt":   true,
	"raw":      true,
	"response": true,
}

const redacted = "[redacted]"

// NewLogger builds the process logger for component (server, a cron job, the
// admin CLI), installs it as the slog default and returns it. Output goes to
// stderr.
func NewLogger(cfg config.LogConfig, component string) *slog.Logger {
	logger := slog.New(newLogHandler(os.Stderr, cfg)).With(
		slog.String("component", component),
		slog.String("version", Version),
	)
	slog.SetDefault(logger)
	return logger
}

// newLogHandler picks JSON or text output. Text output, used locally, also
// carries the source position.
func newLogHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	text := strings.EqualFold(cfg.Format, "text")
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   text,
		ReplaceAttr: redactAttr,
	}
	if text {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

func redactAttr(groups []string, a slog.Attr) slog.Attr {
	if redactedKeys[a.Key] && a.Value.Kind() == slog.KindString && a.Value.String() != "" {
		return slog.String(a.Key, redacted)
	}
	return a
}

// parseLevel accepts slog level names with optional offsets ("warn",
// "debug+2") and the common "warning" spelling. Anything else is info.
func parseLevel(s string) slog.Level {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "warning") {
		return slog.LevelWarn
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
