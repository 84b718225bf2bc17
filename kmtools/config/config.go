package config

import (
	"errors"
	"time"

	"github.com/github/go-config"
)

// Config holds application configuration.
type Config struct {
	UserAgent      string `config:"komoot-tools,env=KOMOOT_USER_AGENT"`
	TimeoutSeconds int    `config:"30,env=KOMOOT_HTTP_TIMEOUT"`
}

// Load parses configuration from the environment and places it in a newly
// allocated Config struct.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := config.Load(cfg); err != nil {
		return nil, err
	}

	if cfg.TimeoutSeconds <= 0 {
		return nil, errors.New("http timeout must be a positive number of seconds")
	}

	return cfg, nil
}

// HTTPTimeout returns the configured http timeout as a duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
