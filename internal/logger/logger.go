package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var once sync.Once

// Init configures the global zerolog logger. Console output outside
// production, JSON in production.
func Init(env string) {
	once.Do(func() {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		l := zerolog.New(os.Stdout).With().Timestamp().Logger()
		if env != "production" {
			l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
			l = l.Level(zerolog.DebugLevel)
		} else {
			l = l.Level(zerolog.InfoLevel)
		}
		log.Logger = l
	})
}
