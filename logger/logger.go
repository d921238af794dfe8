// Package logger configures the global zerolog logger and hands out
// per-component sub-loggers.
//
// At startup DEBUG (any value) enables debug level and DLAI_LOG_FORMAT=json
// replaces the console writer with plain JSON lines. Output goes to stderr.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Environment variables read at startup.
const (
	EnvDebug  = "DEBUG"
	EnvFormat = "DLAI_LOG_FORMAT"
)

// New returns the global logger tagged with component.
// Loggers created before a later Setup keep the old output.
func New(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// Setup replaces the global logger with one writing to out, as JSON lines
// or through the human-readable console writer.
func Setup(out io.Writer, json bool) {
	if !json {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}

// SetDebug switches the global level between debug and info.
func SetDebug(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
}

func init() {
	_, debug := os.LookupEnv(EnvDebug)
	SetDebug(debug)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	Setup(os.Stderr, strings.EqualFold(os.Getenv(EnvFormat), "json"))
}
