package utils

import (
	"log"

	"nimtoz/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Global logger instance
var Logger *zap.Logger

// InitializeLogger sets up the logging configuration. The level comes from
// LOG_LEVEL when set, otherwise info in production and debug elsewhere.
func InitializeLogger() {
	var cfg zap.Config
	level := zapcore.DebugLevel

	if IsProduction() {
		cfg = zap.NewProductionConfig()
		level = zapcore.InfoLevel
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if configured := config.AppConfig.LogLevel; configured != "" {
		if parsed, err := zapcore.ParseLevel(configured); err == nil {
			level = parsed
		} else {
			log.Printf("Invalid LOG_LEVEL %q, falling back to %s", configured, level)
		}
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	// Create logger
	var err error
	Logger, err = cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
}

// GetLogger retrieves the global logger
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}
