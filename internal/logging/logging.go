// Package logging builds the zap logger. The terminal UI owns stdout, so
// output goes to a file; without one, logging is disabled.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a logger writing to path.
// level: "debug", "info", "warn", "error" (default: "info")
// format: "json" or "console" (default: "json")
// An empty path returns a no-op logger.
func New(level, format, path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	var cfg zap.Config
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger.With(zap.String("service_name", "pragati")), nil
}
