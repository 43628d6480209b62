// Package logging configures the process-wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Environment variables consulted by FromEnv.
const (
	EnvLevel  = "RCADE_LOG_LEVEL"
	EnvFormat = "RCADE_LOG_FORMAT"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string
	TimeFormat string
}

// DefaultConfig returns info level console output.
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     FormatConsole,
		TimeFormat: time.TimeOnly,
	}
}

// FromEnv returns DefaultConfig overridden by RCADE_LOG_LEVEL and RCADE_LOG_FORMAT.
// Unrecognized values are ignored.
func FromEnv() Config {
	cfg := DefaultConfig()
	if lvl, err := ParseLevel(os.Getenv(EnvLevel)); err == nil {
		cfg.Level = lvl
	}
	if f, err := ParseFormat(os.Getenv(EnvFormat)); err == nil {
		cfg.Format = f
	}
	return cfg
}

// ParseLevel parses trace, debug, info, warn or error.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	}
	return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
}

// ParseFormat parses console or json.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case FormatConsole, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown log format %q", s)
}

// New creates a logger writing to w.
func New(cfg Config, w io.Writer) zerolog.Logger {
	if cfg.Format != FormatJSON {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: cfg.TimeFormat}
	}
	return zerolog.New(w).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// Setup installs a stderr logger built from cfg as the global logger.
func Setup(cfg Config) {
	log.Logger = New(cfg, os.Stderr)
	zerolog.SetGlobalLevel(cfg.Level)
}
