package logger

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// New builds a console logger on w at the named level.
// Each logger carries a session id so one run's events can be grouped.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger(), nil
}
