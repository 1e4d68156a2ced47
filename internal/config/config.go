// Package config loads the gateway's configuration from environment
// variables with the documented defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the claimgate server.
type Config struct {
	Server    ServerConfig
	RateLimit RateLimitConfig
	Gateway   GatewayConfig
	Redis     RedisConfig
	AI        AIConfig
}

type ServerConfig struct {
	Port int
	Env  string
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

type GatewayConfig struct {
	MaxBodyBytes int64
	MinLogChars  int
	MaxLogChars  int
}

type RedisConfig struct {
	// URL is optional: when set, rate-limit accounting moves to a shared
	// Redis counter so multiple instances agree; when empty, a
	// process-local in-memory store is used.
	URL string
}

type AIConfig struct {
	Provider string
	Timeout  time.Duration
	Gemini   GeminiConfig
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

var validProviders = map[string]bool{
	"gemini": true,
	"mock":   true,
}

// Load reads configuration from environment variables and returns a
// validated Config. Returns an error with a descriptive message if any
// required value is missing or invalid.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envInt("CLAIMGATE_PORT", 8080),
			Env:  envString("CLAIMGATE_ENV", "development"),
		},
		RateLimit: RateLimitConfig{
			Requests: envInt("RATE_LIMIT_REQUESTS", 10),
			Window:   envDurationSecs("RATE_LIMIT_WINDOW_SECS", 60*time.Second),
		},
		Gateway: GatewayConfig{
			MaxBodyBytes: envInt64("MAX_BODY_BYTES", 1<<20),
			MinLogChars:  envInt("LOG_TEXT_MIN_CHARS", 10),
			MaxLogChars:  envInt("LOG_TEXT_MAX_CHARS", 50000),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		AI: AIConfig{
			Provider: envString("AI_PROVIDER", "gemini"),
			Timeout:  envDurationSecs("AI_TIMEOUT_SECS", 30*time.Second),
			Gemini: GeminiConfig{
				APIKey: os.Getenv("GEMINI_API_KEY"),
				Model:  envString("GEMINI_MODEL", "gemini-1.5-flash"),
			},
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if !validProviders[c.AI.Provider] {
		return fmt.Errorf("AI_PROVIDER must be one of gemini, mock; got %q", c.AI.Provider)
	}
	if c.AI.Provider == "gemini" && c.AI.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required when AI_PROVIDER is gemini")
	}

	if c.RateLimit.Requests <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", c.RateLimit.Requests)
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW_SECS must be positive")
	}

	if c.Gateway.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", c.Gateway.MaxBodyBytes)
	}
	if c.Gateway.MinLogChars <= 0 || c.Gateway.MaxLogChars <= 0 {
		return fmt.Errorf("log text bounds must be positive")
	}
	if c.Gateway.MinLogChars > c.Gateway.MaxLogChars {
		return fmt.Errorf("LOG_TEXT_MIN_CHARS (%d) exceeds LOG_TEXT_MAX_CHARS (%d)",
			c.Gateway.MinLogChars, c.Gateway.MaxLogChars)
	}

	if c.AI.Timeout <= 0 {
		return fmt.Errorf("AI_TIMEOUT_SECS must be positive")
	}

	return nil
}

func envString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func envInt64(key string, defaultVal int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return defaultVal
	}
	return i
}

func envDurationSecs(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	secs, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return time.Duration(secs) * time.Second
}
