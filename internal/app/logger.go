package app

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "linecoffee"

// initLogger создает логгер.
// "production" включает JSON-формат, уровни debug/info/warn/error задают порог консольного логгера.
func initLogger(logLevel string) (*zap.Logger, error) {
	var cfg zap.Config

	if logLevel == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		level, err := zapcore.ParseLevel(logLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to parse log level %q: %w", logLevel, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(level)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	return logger.Named(serviceName), nil
}
