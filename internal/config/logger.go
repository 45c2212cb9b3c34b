package config

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger builds the application logger writing to stderr. An unknown
// level falls back to info.
func NewLogger(level string) *log.Logger {
	return newLogger(os.Stderr, level)
}

func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "treasuremap",
	})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}
