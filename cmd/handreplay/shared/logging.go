// Package shared holds helpers used by every handreplay subcommand.
package shared

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger configures the CLI logger. Debug mode lowers the level
// and adds caller information.
func SetupLogger(debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		ReportCaller:    debug,
	})
}

// SetupQuietLogger returns a logger that discards everything, for
// commands whose stdout is the product (exports, generated scripts).
func SetupQuietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
