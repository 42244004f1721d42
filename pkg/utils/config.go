package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Checkout CheckoutConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

// UpstreamConfig points at the remote hotel/booking REST API.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AuthConfig holds the identity provider's token verification secret.
type AuthConfig struct {
	JWTSecret string
}

// CheckoutConfig describes the hosted checkout provider's conventions.
type CheckoutConfig struct {
	SessionPrefix string
	ResultTTL     time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("UPSTREAM_TIMEOUT", "30s")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CHECKOUT_SESSION_PREFIX", "cs_")
	viper.SetDefault("VERIFICATION_RESULT_TTL", "5m")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Upstream: UpstreamConfig{
			BaseURL: viper.GetString("UPSTREAM_BASE_URL"),
			Timeout: viper.GetDuration("UPSTREAM_TIMEOUT"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("JWT_SECRET"),
		},
		Checkout: CheckoutConfig{
			SessionPrefix: viper.GetString("CHECKOUT_SESSION_PREFIX"),
			ResultTTL:     viper.GetDuration("VERIFICATION_RESULT_TTL"),
		},
	}

	return config, nil
}
