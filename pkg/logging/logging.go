// Package logging configures structured logging for the server.
//
// Text output goes through tint for colored, human-readable lines; JSON
// output uses the standard slog JSON handler for log collectors.
//
// Environment variables:
//
//	LOG_LEVEL:  debug, info, warn, error (default: info)
//	LOG_FORMAT: text, json (default: text)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Options selects the handler built by New.
type Options struct {
	Level slog.Level
	JSON  bool

	// NoColor disables ANSI colors in text output.
	NoColor bool
}

// Setup installs the default logger from LOG_LEVEL and LOG_FORMAT and returns it.
func Setup() *slog.Logger {
	logger := New(os.Stderr, OptionsFromEnv(os.Getenv))
	slog.SetDefault(logger)
	return logger
}

// New builds a logger writing to w.
func New(w io.Writer, opts Options) *slog.Logger {
	if opts.JSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     opts.Level,
			AddSource: true,
		}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      opts.Level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
		NoColor:    opts.NoColor,
	}))
}

// OptionsFromEnv reads LOG_LEVEL and LOG_FORMAT through getenv.
func OptionsFromEnv(getenv func(string) string) Options {
	return Options{
		Level: ParseLevel(getenv("LOG_LEVEL")),
		JSON:  strings.EqualFold(getenv("LOG_FORMAT"), "json"),
	}
}

// ParseLevel maps a level name to a slog.Level. Unknown names yield info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
