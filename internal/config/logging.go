package config

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger builds the process logger. The level comes from SKYRAID_LOG_LEVEL
// (default defaultLevel). When SKYRAID_LOG_FILE is set, output goes to that file
// instead of stderr; closeFn releases it.
func NewLogger(prefix, defaultLevel string) (logger *log.Logger, closeFn func() error, err error) {
	level, err := log.ParseLevel(GetEnv("SKYRAID_LOG_LEVEL", defaultLevel))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid SKYRAID_LOG_LEVEL: %w", err)
	}

	var out io.Writer = os.Stderr
	closeFn = func() error { return nil }
	if path := GetEnv("SKYRAID_LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
