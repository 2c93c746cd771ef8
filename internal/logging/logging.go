// Package logging builds the zap logger used by the stockpile CLI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel keeps command output free of log lines unless asked for.
const DefaultLevel = "warn"

// New returns a production zap logger writing JSON to stderr at the given
// level ("debug", "info", "warn", "error"). An empty level means DefaultLevel.
func New(level string) (*zap.Logger, error) {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
