package main

import (
	"go.uber.org/zap"
)

// newLogger builds the diagnostic-stream logger. Warnings (missing
// targets, bad patterns) are always visible; --debug lowers the level
// to emit trace lines for root resolution, backend probing and
// per-target assembly.
func newLogger(debug bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
