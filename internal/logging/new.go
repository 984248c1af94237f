package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rs/zerolog"
)

// Supported output formats.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatZerolog = "zerolog"
)

// New builds a Logger writing to w in the given format at the given level
// ("debug", "info", "warn", "error"). Unknown formats or levels are errors.
func New(w io.Writer, format, level string) (Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	switch strings.ToLower(format) {
	case FormatText:
		return NewSlogLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))), nil
	case FormatJSON:
		return NewSlogLogger(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))), nil
	case FormatZerolog:
		zl, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		return NewZerologLogger(zerolog.New(w).Level(zl).With().Timestamp().Logger()), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
