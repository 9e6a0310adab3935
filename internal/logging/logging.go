// Package logging configures the agent's structured logger.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the agent logger. Production mode emits JSON on stderr;
// debug mode switches to the development console encoder and debug level.
func NewLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// Initialize builds the agent logger and installs it as the zap global, so
// packages can log via zap.L() and zap.S().
func Initialize(debug bool) error {
	logger, err := NewLogger(debug)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}
