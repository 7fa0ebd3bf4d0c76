package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoggerConfig(t *testing.T) {
	tests := []struct {
		name       string
		production bool
		level      string
		want       zapcore.Level
		encoding   string
	}{
		{"development default", false, "", zapcore.DebugLevel, "console"},
		{"production default", true, "", zapcore.InfoLevel, "json"},
		{"override in development", false, "warn", zapcore.WarnLevel, "console"},
		{"override in production", true, "debug", zapcore.DebugLevel, "json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loggerConfig(tt.production, tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Level.Level())
			assert.Equal(t, tt.encoding, cfg.Encoding)
		})
	}
}

func TestLoggerConfig_BadLevelKeepsDefault(t *testing.T) {
	cfg, err := loggerConfig(false, "loud")
	assert.Error(t, err)
	assert.Equal(t, zapcore.DebugLevel, cfg.Level.Level())
}
