// Package logging provides structured logging for reconciliation using
// zerolog. Terminals get human-readable console output, everything else
// gets JSON.
//
// Example usage:
//
//	log := logging.Default()
//	log.Info().Int("elements", 42).Msg("Reconciled scene")
//
//	ctx := logging.WithReconcileID(context.Background(), id)
//	logging.FromContext(ctx).Debug().Str("element_id", "rect-1").Msg("Kept local element")
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	defaultLogger = fromEnv()

	// Nop logger for discarding output.
	Nop = zerolog.Nop()
)

// fromEnv builds the process logger before any command configures one.
// LOG_LEVEL and LOG_FORMAT apply; DEBUG turns on debug when LOG_LEVEL is unset.
func fromEnv() zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = os.Getenv("LOG_LEVEL")
	if cfg.Level == "" && os.Getenv("DEBUG") != "" {
		cfg.Level = "debug"
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.Format = format
	}
	return NewLoggerFromConfig(cfg)
}

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the default logger and zerolog's global one.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

// Debug starts a debug event on the default logger.
func Debug() *zerolog.Event { return defaultLogger.Debug() }

// Info starts an info event on the default logger.
func Info() *zerolog.Event { return defaultLogger.Info() }

// Warn starts a warn event on the default logger.
func Warn() *zerolog.Event { return defaultLogger.Warn() }

// Error starts an error event on the default logger.
func Error() *zerolog.Event { return defaultLogger.Error() }

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
