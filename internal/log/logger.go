package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the root logger. Development gets a colored console writer,
// everything else plain JSON on stdout.
func New(environment string) zerolog.Logger {
	var logger zerolog.Logger

	if environment == "development" {
		output := zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
		logger = zerolog.New(output).With().
			Timestamp().
			Logger()
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		logger = zerolog.New(os.Stdout).With().
			Timestamp().
			Str("env", environment).
			Logger()
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	return logger
}
