// Package config loads the application configuration from environment
// variables, optionally seeded from a local .env file.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const DefaultModel = "gemini-2.5-flash"

// Config holds all configurable parameters for the assistant.
type Config struct {
	// LLM provider
	APIKey string `envconfig:"GEMINI_API_KEY" required:"true"`
	Model  string `envconfig:"HRMATE_MODEL" default:"gemini-2.5-flash"`

	// Runtime
	Env string `envconfig:"HRMATE_ENV" default:"development"`
}

// Environment returns the parsed deployment environment.
func (c *Config) Environment() Environment {
	return ParseEnvironment(c.Env)
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present; a missing file is not
// an error so deployed environments can rely on real env vars.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks invariants that envconfig tags cannot express.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY must not be empty")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	return nil
}
