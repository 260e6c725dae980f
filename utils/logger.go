package utils

import (
	"log"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the process-wide logger.
	Logger     *zap.Logger
	loggerOnce sync.Once
)

// NewLogger builds a zap logger for env at the given level. Unknown levels
// fall back to info.
func NewLogger(env, level string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	lvl := zapcore.InfoLevel
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

// InitializeLogger sets up the global logger and zap's global replacement.
func InitializeLogger(env, level string) {
	loggerOnce.Do(func() {
		l, err := NewLogger(env, level)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		Logger = l
		zap.ReplaceGlobals(l)
	})
}

// GetLogger retrieves the global logger, building a development one if
// InitializeLogger was never called.
func GetLogger() *zap.Logger {
	InitializeLogger("development", "debug")
	return Logger
}
