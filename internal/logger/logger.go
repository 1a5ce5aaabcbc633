// Package logger builds the slog.Logger used by the coverart command.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Format names accepted in Config.Format.
const (
	FormatJSON   = "json"
	FormatPretty = "pretty"
)

// Config holds logger configuration.
type Config struct {
	Writer io.Writer
	Format string // FormatJSON, FormatPretty, or "" to pick by terminal
	Level  slog.Level
}

// New creates a logger with the given configuration.
//
// With an empty Format, terminals get the pretty format and everything else
// gets JSON. Pretty output is colored only on terminals.
func New(cfg Config) *slog.Logger {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}

	tty := IsTerminal(cfg.Writer)
	if cfg.Format == "" {
		if tty {
			cfg.Format = FormatPretty
		} else {
			cfg.Format = FormatJSON
		}
	}

	if cfg.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(cfg.Writer, &slog.HandlerOptions{Level: cfg.Level}))
	}
	return slog.New(NewPrettyHandler(cfg.Writer, cfg.Level, tty))
}

// IsTerminal reports whether w is a terminal (including Cygwin/MSYS ptys).
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ParseLevel converts a string to slog.Level. Unknown values map to Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
