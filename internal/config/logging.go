package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger builds the zerolog logger from the logging configuration and
// installs it as the global logger. The level defaults to info when the
// configured value does not parse. When a log file is configured it is opened
// in append mode and logs go to both the console and the file.
//
// The returned close function releases the log file handle (no-op when
// logging only to the console).
func InitLogger(cfg LoggingConfig) (zerolog.Logger, func() error, error) {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var writers []io.Writer
	if cfg.Format == "json" {
		writers = append(writers, os.Stderr)
	} else {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	closeFn := func() error { return nil }
	if cfg.File != "" {
		logFile, fileErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if fileErr != nil {
			return zerolog.Nop(), closeFn, fileErr
		}
		writers = append(writers, logFile)
		closeFn = logFile.Close
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	log.Logger = logger
	return logger, closeFn, nil
}
