// Package logging builds the zap loggers used across goaisc.
package logging

import (
	"go.uber.org/zap"

	"github.com/alexiusacademia/goaisc/internal/config"
)

// New creates a structured logger from the logging configuration.
// An unknown level falls back to info.
func New(cfg config.Logging) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zapConfig.Level = level

	if cfg.Format == "console" {
		zapConfig.Encoding = "console"
	} else {
		zapConfig.Encoding = "json"
	}

	if cfg.OutputPath != "" {
		zapConfig.OutputPaths = []string{cfg.OutputPath}
	} else {
		// stdout carries command output
		zapConfig.OutputPaths = []string{"stderr"}
	}

	return zapConfig.Build(zap.Fields(zap.String("service", "goaisc")))
}

// OrNop returns logger, or a no-op logger when it is nil.
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
