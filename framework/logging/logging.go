// Package logging builds the zap logger shared by the container, the router
// and the CLI.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/km-arc/go-ioc/framework/config"
)

// New returns a development logger (coloured levels, ISO8601 time) when
// debug is on, and a production JSON logger otherwise. Both honour
// cfg.Log.Level.
func New(cfg *config.Config) (*zap.Logger, error) {
	level := Level(cfg.Log.Level)

	if cfg.App.Debug {
		zc := zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zc.Level = zap.NewAtomicLevelAt(level)
		return zc.Build()
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build(zap.Fields(zap.String("app", cfg.App.Name), zap.String("env", cfg.App.Env)))
}

// Level maps a config string to a zap level, defaulting to info.
func Level(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}
