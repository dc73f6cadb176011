// Package logging builds the process-wide zerolog logger.
// Output always goes to the writer passed in (stderr in production): stdout is
// reserved for the MCP stdio transport.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// New returns a logger writing to w at the given level and format.
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	switch format {
	case FormatConsole, "":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime, NoColor: true}
	case FormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q (want %s or %s)", format, FormatConsole, FormatJSON)
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
