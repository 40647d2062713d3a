package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "push-delivery-engine"

// New builds the process logger. level is one of debug, info, warn, error;
// pretty switches to console output for local runs.
func New(level string, pretty bool) zerolog.Logger {
	var w io.Writer = os.Stdout
	if pretty {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return base(w, level).Caller().Logger()
}

// NewWithWriter builds a logger over w, without caller info.
func NewWithWriter(level string, w io.Writer) zerolog.Logger {
	return base(w, level).Logger()
}

func base(w io.Writer, level string) zerolog.Context {
	return zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Str("service", serviceName)
}

// Component derives a child logger for one subsystem (gate, fanout, invalidator, ...).
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// Event scopes a logger to one logical push event.
func Event(log zerolog.Logger, eventKey, role, scope string) zerolog.Logger {
	return log.With().
		Str("event_key", eventKey).
		Str("role", role).
		Str("scope", scope).
		Logger()
}

// ParseLevel maps a config level to zerolog. Unknown or empty values,
// and levels above error, fall back to info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel || lvl < zerolog.DebugLevel || lvl > zerolog.ErrorLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
