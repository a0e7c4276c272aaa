package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds application configuration, loaded from the environment.
type Config struct {
	Port        string
	DatabaseURL string
	RedisAddr   string
	JWTSecret   string
	AIAPIKey    string
	AIBaseURL   string
	AIModel     string
}

// Load reads configuration from environment variables, applying defaults for
// the optional values and rejecting missing required ones.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("ai_model", "gpt-4o-mini")
	v.AutomaticEnv()

	// Explicit binds so AutomaticEnv resolves keys without a config file.
	for _, key := range []string{"port", "database_url", "redis_addr", "jwt_secret", "ai_api_key", "ai_base_url", "ai_model"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	cfg := &Config{
		Port:        v.GetString("port"),
		DatabaseURL: v.GetString("database_url"),
		RedisAddr:   v.GetString("redis_addr"),
		JWTSecret:   v.GetString("jwt_secret"),
		AIAPIKey:    v.GetString("ai_api_key"),
		AIBaseURL:   v.GetString("ai_base_url"),
		AIModel:     v.GetString("ai_model"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.AIAPIKey == "" && cfg.AIBaseURL == "" {
		return nil, fmt.Errorf("AI_API_KEY is required (or AI_BASE_URL for a local endpoint)")
	}

	return cfg, nil
}
