// Package config provides configuration loading and validation for copygate.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds the runtime configuration, loaded from the environment.
// Malformed values are fatal at load time; they never surface as runtime
// content decisions.
type Config struct {
	// Server
	Port int `validate:"min=1,max=65535"`

	// Generator
	GeminiAPIKey     string
	GeneratorModel   string        `validate:"required"`
	GeneratorTimeout time.Duration `validate:"min=1s,max=5m"`

	// Fix-loop policy
	MaxFixAttempts  int     `validate:"min=1,max=5"`
	SimilarityFloor float64 `validate:"gte=0,lte=1"`

	// Evaluation
	TestMode bool

	// Logging
	LogLevel string `validate:"oneof=debug info warn error"`
}

// Load reads configuration from environment variables, applying defaults for
// anything unset, and validates the result. A variable that is set but does
// not parse is a fatal error, not a silent fallback.
func Load() (*Config, error) {
	port, err := envInt("COPYGATE_PORT", 8080)
	if err != nil {
		return nil, err
	}
	timeout, err := envDuration("COPYGATE_GENERATOR_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	attempts, err := envInt("COPYGATE_MAX_FIX_ATTEMPTS", 2)
	if err != nil {
		return nil, err
	}
	floor, err := envFloat("COPYGATE_SIMILARITY_FLOOR", 0.50)
	if err != nil {
		return nil, err
	}
	testMode, err := envBool("COPYGATE_TEST_MODE", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:             port,
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeneratorModel:   envString("COPYGATE_GENERATOR_MODEL", "gemini-2.5-flash"),
		GeneratorTimeout: timeout,
		MaxFixAttempts:   attempts,
		SimilarityFloor:  floor,
		TestMode:         testMode,
		LogLevel:         envString("COPYGATE_LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %q", key, v)
	}
	return n, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number for %s: %q", key, v)
	}
	return f, nil
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid boolean for %s: %q", key, v)
	}
	return b, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q", key, v)
	}
	return d, nil
}
