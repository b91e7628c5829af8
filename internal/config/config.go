// Package config provides environment-based configuration for the dashboard
// server. A .env file, when present, is loaded by the CLI entry point before
// this package reads anything.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
)

// Config holds everything the server needs to start. DatabaseURL and RedisURL
// are optional: without them the criteria store is in-memory and score
// listings are uncached.
type Config struct {
	Port        int    // HTTP listen port
	DataRoot    string // directory containing the jobs/ tree
	ScoringURL  string // base URL of the external scoring backend
	DatabaseURL string // optional PostgreSQL URL for the criteria store
	RedisURL    string // optional Redis URL for the score cache
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        envInt("PORT", 8080),
		DataRoot:    envStr("DATA_ROOT", "./data"),
		ScoringURL:  envStr("SCORING_URL", ""),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value shapes; required-ness of the scoring backend is a
// caller decision since the scan and mock commands run fully offline.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: PORT %d out of range", c.Port)
	}
	if c.DataRoot == "" {
		return fmt.Errorf("config error: DATA_ROOT must not be empty")
	}
	if c.ScoringURL != "" {
		u, err := url.Parse(c.ScoringURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("config error: SCORING_URL %q is not a valid URL", c.ScoringURL)
		}
	}
	return nil
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
