package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Setup builds the CLI logger writing to w.
//   - level: zerolog level name (trace, debug, info, warn, error, fatal, panic);
//     unknown names fall back to info
//   - format: "json" for machine-readable output, anything else for
//     human-readable console output
func Setup(level, format string, w io.Writer) zerolog.Logger {
	writer := w
	if format != "json" {
		writer = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(writer).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
