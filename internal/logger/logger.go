// Package logger builds the zerolog loggers used by the demonstration
// command. Library packages never log; they return errors.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Environment variables read by FromEnv.
const (
	EnvLogLevel  = "RECURSION_LOG_LEVEL"
	EnvLogFormat = "RECURSION_LOG_FORMAT"
	EnvLogCaller = "RECURSION_LOG_CALLER"
)

// Logger is the project-wide logging type.
type Logger = zerolog.Logger

// Options configures New.
type Options struct {
	Level        string // trace|debug|info|warn|error; default info
	Format       string // console|json; default console
	Writer       io.Writer
	WithCaller   bool // adds the caller file:line to every event
	StaticFields map[string]string
}

// FromEnv builds Options from RECURSION_LOG_* variables.
func FromEnv() Options {
	return Options{
		Level:      strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogLevel))),
		Format:     strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogFormat))),
		WithCaller: parseBool(os.Getenv(EnvLogCaller)),
	}
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// New returns a logger writing to opt.Writer (stderr when nil).
func New(opt Options) Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var w io.Writer = os.Stderr
	if opt.Writer != nil {
		w = opt.Writer
	}
	if opt.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: opt.Writer != nil}
	}

	ctx := zerolog.New(w).Level(ParseLevel(opt.Level)).With().Timestamp()
	for k, v := range opt.StaticFields {
		ctx = ctx.Str(k, v)
	}

	log := ctx.Logger()
	if opt.WithCaller {
		log = log.With().Caller().Logger()
	}

	return log
}

// Named returns a child logger with a component field.
func Named(l Logger, component string) *Logger {
	if component != "" {
		l = l.With().Str("component", component).Logger()
	}

	return &l
}

// ParseLevel maps a level name to zerolog, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
