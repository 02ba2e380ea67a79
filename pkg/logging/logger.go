// Package logging wraps zerolog for winsane. Output is a console writer when
// stderr is a terminal and JSON lines otherwise.
//
//	ctx := logging.WithTweak(ctx, key.String())
//	logging.FromContext(ctx).Debug().Msg("running on command")
package logging

import (
	"os"

	tty "github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var defaultLogger = NewLoggerFromConfig(envConfig())

// envConfig reads LOG_LEVEL, LOG_FORMAT and DEBUG. The CLI replaces the
// resulting logger once flags are parsed.
func envConfig() *Config {
	cfg := DefaultConfig()
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Level = v
	} else if os.Getenv("DEBUG") != "" {
		cfg.Level = "debug"
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Format = v
	}
	return cfg
}

// Default returns the process-wide logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the process-wide logger, zerolog's global included.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

// Info starts an info event on the default logger.
func Info() *zerolog.Event {
	return defaultLogger.Info()
}

// Warn starts a warning event on the default logger.
func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

// Err starts an event carrying err: error level when err is non-nil, info otherwise.
func Err(err error) *zerolog.Event {
	return defaultLogger.Err(err)
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return tty.IsTerminal(fd) || tty.IsCygwinTerminal(fd)
}
