package utils

import (
	"log"

	"antshop/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger, built on first use.
var Logger *zap.Logger

// loggerConfig picks JSON at info for production and colored console output
// at debug elsewhere. A non-empty level overrides either default.
func loggerConfig(production bool, level string) (zap.Config, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if production {
		cfg = zap.NewProductionConfig()
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return cfg, err
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return cfg, nil
}

// InitializeLogger builds Logger from AppConfig and installs it as zap's
// global. An unparsable LOG_LEVEL is reported and ignored.
func InitializeLogger() {
	cfg, err := loggerConfig(config.IsProduction(), config.AppConfig.LogLevel)
	if err != nil {
		log.Printf("ignoring LOG_LEVEL %q: %v", config.AppConfig.LogLevel, err)
	}

	Logger, err = cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	zap.ReplaceGlobals(Logger)
}

func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}
