package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options control how the global logger is set up.
type Options struct {
	// Level is one of debug, info, warn, error. Unknown values fall back
	// to info.
	Level string

	// Format is "console" or "json".
	Format string

	NoColor bool
}

// InitDefault sets up a console logger at info level. Used before flags
// and config are parsed, so early failures are still readable.
func InitDefault() {
	Init(Options{Level: "info", Format: "console"})
}

// Init replaces the global zerolog logger according to opts.
func Init(opts Options) {
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	if opts.Format != "json" {
		out = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
			NoColor:    opts.NoColor,
		}
	}

	log.Logger = zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()
}
