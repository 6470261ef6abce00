package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type implLogger struct {
	logger zerolog.Logger
}

// New creates a new Logger instance writing to stderr.
// Format is "console" or "json"; unknown levels fall back to info.
func New(level, format string) Logger {
	return newLogger(level, format, os.Stderr)
}

func newLogger(level, format string, sink io.Writer) *implLogger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	out := sink
	if strings.ToLower(format) != "json" {
		out = zerolog.ConsoleWriter{Out: sink, TimeFormat: time.Kitchen}
	}

	zl := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return &implLogger{logger: zl}
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Debug().Msgf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Info().Msgf(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Warn().Msgf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Error().Msgf(msg, args...)
}
