package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Catalog     CatalogConfig
	Session     SessionConfig
	Cart        CartConfig
	LogLevel    string
}

type CatalogConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
	CookieName    string
}

type CartConfig struct {
	Enabled        bool
	CurrencySymbol string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CATALOG_BASE_URL", "https://fakestoreapi.com")

	// Read from environment variables
	viper.AutomaticEnv()

	// .env is optional
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	catalogTimeout, err := getDuration("CATALOG_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	sessionTTL, err := getDuration("SESSION_TTL", "30m")
	if err != nil {
		return nil, err
	}
	sweepInterval, err := getDuration("SESSION_SWEEP_INTERVAL", "1m")
	if err != nil {
		return nil, err
	}
	cartEnabled, err := strconv.ParseBool(getEnvOrViper("CART_ENABLED", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid CART_ENABLED: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Catalog: CatalogConfig{
			BaseURL: getEnvOrViper("CATALOG_BASE_URL", "https://fakestoreapi.com"),
			Timeout: catalogTimeout,
		},
		Session: SessionConfig{
			TTL:           sessionTTL,
			SweepInterval: sweepInterval,
			CookieName:    getEnvOrViper("SESSION_COOKIE", "session_id"),
		},
		Cart: CartConfig{
			Enabled:        cartEnabled,
			CurrencySymbol: getEnvOrViper("CURRENCY_SYMBOL", "$"),
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.Catalog.BaseURL == "" {
		return nil, fmt.Errorf("CATALOG_BASE_URL is required")
	}
	if cfg.Session.TTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive")
	}
	if cfg.Session.SweepInterval <= 0 {
		return nil, fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}

func getDuration(key, defaultValue string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnvOrViper(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
