package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// setLogger returns a zap logger tuned for the given environment. Unknown
// environments fall back to production.
func setLogger(environment string) (*zap.Logger, error) {
	switch environment {
	case "local":
		c := zap.NewDevelopmentConfig()
		c.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		return c.Build()
	case "development":
		c := zap.NewDevelopmentConfig()
		c.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		return c.Build()
	default:
		return zap.NewProduction()
	}
}
