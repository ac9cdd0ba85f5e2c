// Package logging builds the charmbracelet/log loggers used across muniquiz.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultLevel keeps the quiz output free of diagnostics unless asked for.
const DefaultLevel = "warn"

// New returns a stderr-style text logger at the named level.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          "muniquiz",
		Level:           lvl,
		ReportCaller:    false,
		ReportTimestamp: lvl <= log.DebugLevel,
		Formatter:       log.TextFormatter,
	}), nil
}

// ParseLevel accepts debug, info, warn, error and fatal; empty means DefaultLevel.
func ParseLevel(level string) (log.Level, error) {
	level = strings.TrimSpace(strings.ToLower(level))
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}
