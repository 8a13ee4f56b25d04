// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Level = selectLevel(debug, quiet, cfg.Level, log.DebugLevel, log.ErrorLevel)
	return log.NewWithConfig(cfg)
}

// selectLevel returns the log level for the given flags, debug logging
// takes precedence over quiet mode.
func selectLevel[L any](debug, quiet bool, defaultLevel, debugLevel, quietLevel L) L {
	switch {
	case debug:
		return debugLevel
	case quiet:
		return quietLevel
	default:
		return defaultLevel
	}
}
