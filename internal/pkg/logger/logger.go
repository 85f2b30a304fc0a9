package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"qrgen/internal/platform/config"
)

// Init configures the global zerolog logger. Console output goes to stderr
// so stdout stays reserved for command output.
func Init(cfg config.LoggingConfig) {
	InitWithWriter(cfg, os.Stderr)
}

func InitWithWriter(cfg config.LoggingConfig, w io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(ParseLevel(cfg.Level))

	if cfg.Output == "file" && cfg.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			log.Error().Err(err).Msg("failed to create log directory")
			// fallback to the default writer
			log.Logger = zerolog.New(w).With().Timestamp().Logger()
			return
		}

		file, err := os.OpenFile(cfg.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
		if err != nil {
			log.Error().Err(err).Msg("failed to open log file")
			log.Logger = zerolog.New(w).With().Timestamp().Logger()
			return
		}
		log.Logger = zerolog.New(file).With().Timestamp().Logger()
	} else if cfg.Format == "json" {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	} else {
		// Human readable by default
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	}
}

func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
