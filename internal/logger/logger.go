// Package logger configures the process-wide charmbracelet logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Config holds logger settings coming from CLI flags.
type Config struct {
	Level  string
	JSON   bool
	Output io.Writer
}

// ParseLevel converts a flag value to a log level.
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel, nil
	case "", "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("unknown log level %q (debug|info|warn|error)", level)
	}
}

// New builds a logger from cfg.
func New(cfg Config) (*log.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	l := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if cfg.JSON {
		l.SetFormatter(log.JSONFormatter)
	}
	return l, nil
}

// Setup replaces the default logger used by the log package functions.
func Setup(cfg Config) error {
	l, err := New(cfg)
	if err != nil {
		return err
	}
	log.SetDefault(l)
	return nil
}
