package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	var cfg Config
	require.NoError(t, viper.Unmarshal(&cfg))

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "memory", cfg.SessionBackend)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 10*time.Minute, cfg.SessionSweepInterval)
	assert.Equal(t, "eur", cfg.CheckoutCurrency)
	assert.Equal(t, "/static/mock-payment.html", cfg.MockCheckoutPath)
	assert.Equal(t, "ca", cfg.DialogueLocale)
	assert.Empty(t, cfg.LogLevel)
	assert.Empty(t, cfg.StripeKey)
	assert.False(t, cfg.OrderEventsEnabled)
}

func TestEnvironmentOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("STRIPE_API_KEY", "sk_test_123")
	viper.AutomaticEnv()
	SetDefaults()

	var cfg Config
	require.NoError(t, viper.Unmarshal(&cfg))

	assert.Equal(t, "redis", cfg.SessionBackend)
	assert.Equal(t, "sk_test_123", cfg.StripeKey)
}

func TestStripeConfigured(t *testing.T) {
	prev := AppConfig
	t.Cleanup(func() { AppConfig = prev })

	AppConfig.StripeKey = ""
	assert.False(t, StripeConfigured())
	AppConfig.StripeKey = "sk_test_123"
	assert.True(t, StripeConfigured())
}
