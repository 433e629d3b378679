package logger

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/skyhook-sh/site/config"
)

type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type zerologLogger struct {
	log zerolog.Logger
}

// New returns a console logger in the local env and a JSON logger everywhere
// else, so log aggregation gets structured lines in prod.
func New(cfg *config.Config) Logger {
	var log zerolog.Logger
	if cfg.App.Env == config.Local {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	} else {
		log = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	return &zerologLogger{log: log}
}

func (l *zerologLogger) Info(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *zerologLogger) Warn(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *zerologLogger) Error(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
