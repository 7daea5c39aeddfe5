package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

type Config struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

func DefaultConfig() Config {
	return Config{
		Level:  zerolog.InfoLevel.String(),
		Format: FormatJSON,
	}
}

// Init configures the global zerolog logger. Logs are written to stderr, so command output on stdout stays clean.
func Init(config Config) error {
	logger, err := New(os.Stderr, config)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(logger.GetLevel())
	log.Logger = logger
	zerolog.DefaultContextLogger = &log.Logger
	return nil
}

// New creates a logger writing to w according to the config.
func New(w io.Writer, config Config) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(config.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level: %w", err)
	}
	switch config.Format {
	case FormatJSON, "":
	case FormatConsole:
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format: %s", config.Format)
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
