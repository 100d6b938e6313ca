package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds logging configuration.
type Config struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	Console    bool   `mapstructure:"console"`
	TimeFormat string `mapstructure:"time_format"`
}

// Setup initializes the global logger.
// Logs always go to stderr or a file; stdout carries the launcher items.
func Setup(cfg Config) {
	SetupWithConsole(cfg, os.Stderr)
}

// SetupWithConsole is Setup with an explicit console writer.
func SetupWithConsole(cfg Config, console io.Writer) {
	var writers []io.Writer

	if cfg.Console {
		writers = append(writers, zerolog.ConsoleWriter{Out: console, TimeFormat: cfg.TimeFormat, NoColor: true})
	}

	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Error().Err(err).Msg("Failed to open log file")
		} else {
			writers = append(writers, file)
		}
	}

	if len(writers) == 0 {
		writers = append(writers, zerolog.ConsoleWriter{Out: console, TimeFormat: cfg.TimeFormat, NoColor: true})
	}

	multi := zerolog.MultiLevelWriter(writers...)
	log.Logger = zerolog.New(multi).With().Timestamp().Logger()

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		if err != nil {
			log.Warn().Str("configured_level", cfg.Level).Msg("Invalid log level, defaulting to warn")
		}
	} else {
		zerolog.SetGlobalLevel(level)
	}

	log.Debug().Str("level", zerolog.GlobalLevel().String()).Msg("Logger initialized")
}

// ContextualLogger creates a logger with context fields.
func ContextualLogger(ctx map[string]interface{}) zerolog.Logger {
	return log.With().Fields(ctx).Logger()
}
