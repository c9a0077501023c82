package config

import (
	"fmt"
	"os"
)

type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
}

type JWTConfig struct {
	SecretKey string
}

type Config struct {
	Gemini     GeminiConfig
	JWT        JWTConfig
	ServerPort string
}

// Load reads configuration from the environment. The Gemini credential is
// required: its absence is a configuration error surfaced at startup, not a
// runtime failure on the first search.
func Load() (*Config, error) {
	cfg := &Config{
		Gemini: GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			// Maps grounding is only supported in the Gemini 2.5 series.
			Model:       getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
			Temperature: 0.5,
		},
		JWT: JWTConfig{
			SecretKey: getEnvOrDefault("JWT_SECRET", "partea-dev-secret"),
		},
		ServerPort: getEnvOrDefault("SERVER_PORT", "8091"),
	}

	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
