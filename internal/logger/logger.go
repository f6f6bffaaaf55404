package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var log zerolog.Logger = zerolog.New(io.Discard)

// Init configures the global logger with a console writer on stderr.
// Verbose enables debug-level output.
func Init(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	log = zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// InitWriter routes log output somewhere else entirely, e.g. a file while
// the TUI owns the terminal.
func InitWriter(w io.Writer, verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Get returns the global logger. Before Init it discards everything,
// which is what tests want.
func Get() *zerolog.Logger {
	return &log
}
