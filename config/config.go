package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	StaticDir         string `mapstructure:"STATIC_DIR"`

	// Session storage.
	SessionBackend       string        `mapstructure:"SESSION_BACKEND"`
	SessionTTL           time.Duration `mapstructure:"SESSION_TTL"`
	SessionSweepInterval time.Duration `mapstructure:"SESSION_SWEEP_INTERVAL"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Mongo configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Checkout. An empty Stripe key leaves the bridge unconfigured (demo mode).
	StripeKey          string `mapstructure:"STRIPE_API_KEY"`
	CheckoutCurrency   string `mapstructure:"CHECKOUT_CURRENCY"`
	CheckoutSuccessURL string `mapstructure:"CHECKOUT_SUCCESS_URL"`
	CheckoutCancelURL  string `mapstructure:"CHECKOUT_CANCEL_URL"`
	MockCheckoutPath   string `mapstructure:"MOCK_CHECKOUT_PATH"`

	OrderEventsEnabled bool   `mapstructure:"ORDER_EVENTS_ENABLED"`
	DialogueLocale     string `mapstructure:"DIALOGUE_LOCALE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("STATIC_DIR", "")
	viper.SetDefault("SESSION_BACKEND", "memory")
	viper.SetDefault("SESSION_TTL", "24h")
	viper.SetDefault("SESSION_SWEEP_INTERVAL", "10m")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "antshop")
	viper.SetDefault("STRIPE_API_KEY", "")
	viper.SetDefault("CHECKOUT_CURRENCY", "eur")
	viper.SetDefault("CHECKOUT_SUCCESS_URL", "https://example.com/success?sid={CHECKOUT_SESSION_ID}")
	viper.SetDefault("CHECKOUT_CANCEL_URL", "https://example.com/cancel")
	viper.SetDefault("MOCK_CHECKOUT_PATH", "/static/mock-payment.html")
	viper.SetDefault("ORDER_EVENTS_ENABLED", false)
	viper.SetDefault("DIALOGUE_LOCALE", "ca")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// StripeConfigured reports whether real checkout sessions can be created.
func StripeConfigured() bool {
	return AppConfig.StripeKey != ""
}
