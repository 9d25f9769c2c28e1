// Package logging builds the process logger.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Stderr as the output path logs to the console instead of a file.
const Stderr = "stderr"

// New returns a logger at level writing JSON lines to path, or console
// lines to stderr when path is "stderr" or empty. Files keep the terminal
// clean while the TUI owns it.
func New(level, path string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	var config zap.Config
	if path == "" || path == Stderr {
		config = zap.NewDevelopmentConfig()
		config.OutputPaths = []string{Stderr}
		config.DisableStacktrace = true
	} else {
		config = zap.NewProductionConfig()
		config.OutputPaths = []string{path}
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.Sampling = nil
	}
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.ErrorOutputPaths = []string{Stderr}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.Named("recipebox"), nil
}
