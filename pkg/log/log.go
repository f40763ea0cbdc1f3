// Package log builds [slog.Handler]s for the command line.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
)

// Format is the rendering used for log records.
type Format string

const (
	TextFormat   Format = "text"
	LogfmtFormat Format = "logfmt"
	JSONFormat   Format = "json"
)

var (
	ErrUnknownLogLevel  = errors.New("unknown log level")
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// CreateHandlerWithStrings creates a [slog.Handler] writing to w from level
// and format names.
func CreateHandlerWithStrings(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := GetLevel(level)
	if err != nil {
		return nil, err
	}

	f, err := GetFormat(format)
	if err != nil {
		return nil, err
	}

	return CreateHandler(w, lvl, f), nil
}

// CreateHandler creates a [slog.Handler] writing to w.
func CreateHandler(w io.Writer, level slog.Level, format Format) slog.Handler {
	opts := log.Options{
		Level:           log.Level(level),
		ReportTimestamp: true,
	}

	switch format {
	case JSONFormat:
		opts.Formatter = log.JSONFormatter
	case LogfmtFormat:
		opts.Formatter = log.LogfmtFormatter
	case TextFormat:
		opts.Formatter = log.TextFormatter
	}

	return log.NewWithOptions(w, opts)
}

// GetLevel parses a level name. "warning" and "trace" are accepted as
// aliases of "warn" and "debug".
func GetLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug", "trace":
		return slog.LevelDebug, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownLogLevel, level)
}

// GetFormat parses a format name.
func GetFormat(format string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(format))); f {
	case TextFormat, LogfmtFormat, JSONFormat:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownLogFormat, format)
}
