package aureolin

import (
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// newLogger builds the application logger. Timestamps follow the configured
// layout.
func newLogger(cfg LoggerConfig) *slog.Logger {
	layout := cfg.TimeFormat
	if layout == "" {
		layout = time.RFC3339
	}
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.String(slog.TimeKey, a.Value.Time().Format(layout))
			}
			return a
		},
	})
	return slog.New(handler)
}

// requestLogger logs one line per request with a generated request id. Header
// values listed in RedactHeaders never reach the log output.
type requestLogger struct {
	log *slog.Logger
	cfg LoggerConfig
}

// Handle implements Middleware.
func (m *requestLogger) Handle(next HandlerFunc) HandlerFunc {
	return func(c Context) error {
		start := time.Now()
		id := uuid.NewString()
		c.Set("request_id", id)

		err := next(c)

		attrs := []any{
			slog.String("id", id),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", c.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("remote", c.RealIP()),
		}
		for _, header := range []string{"User-Agent", "Content-Type"} {
			if m.redacted(header) {
				continue
			}
			if v := c.Header(header); v != "" {
				attrs = append(attrs, slog.String(header, v))
			}
		}
		m.log.Info("request", attrs...)
		return err
	}
}

// redacted reports whether a header value must be withheld from logs.
func (m *requestLogger) redacted(name string) bool {
	for _, h := range m.cfg.RedactHeaders {
		if h == name {
			return true
		}
	}
	return false
}

// banner prints the startup line, colored when the logger config allows it.
func banner(cfg *Config, adapterName string) string {
	line := "Aureolin ready on " + cfg.Addr() + " (" + adapterName + ")"
	if !cfg.Logger.Color {
		return line
	}
	return color.New(color.FgCyan, color.Bold).Sprint(line)
}
