package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the CLI logger: debug-level console output on stderr
// when verbose, no-op otherwise.
func newLogger() *zap.Logger {
	if !getBoolWithFallback("verbose", "verbose", false) {
		return zap.NewNop()
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.EncodeLevel = zapcore.CapitalLevelEncoder

	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig = ec
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
