// Package config loads the agent's optional YAML configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type rawConfig struct {
	UserAgent    string `yaml:"user_agent"`
	DefaultURL   string `yaml:"default_url"`
	MaxRedirects int    `yaml:"max_redirects"`
	DialTimeout  string `yaml:"dial_timeout"`
	Rate         struct {
		RPS   float64 `yaml:"rps"`
		Burst int     `yaml:"burst"`
	} `yaml:"rate"`
}

type Config struct {
	// UserAgent is sent verbatim on every network request.
	UserAgent string
	// DefaultURL is loaded when the CLI gets no locator argument.
	DefaultURL string
	// MaxRedirects bounds one load's redirect chain.
	MaxRedirects int
	// DialTimeout limits connection setup; zero blocks indefinitely.
	DialTimeout time.Duration
	// RateRPS/RateBurst throttle requests per authority; zero RPS
	// disables throttling.
	RateRPS   float64
	RateBurst int
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		UserAgent:    "browse/0.1.0",
		DefaultURL:   "file://README.md",
		MaxRedirects: 10,
	}
}

// Load reads a YAML file and overlays it on the defaults. Unset fields
// keep their default; set fields are validated.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var rc rawConfig
	if err := yaml.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}

	c := Default()
	if rc.UserAgent != "" {
		c.UserAgent = rc.UserAgent
	}
	if rc.DefaultURL != "" {
		c.DefaultURL = rc.DefaultURL
	}
	if rc.MaxRedirects != 0 {
		if rc.MaxRedirects < 1 {
			return nil, fmt.Errorf("max_redirects: must be at least 1, got %d", rc.MaxRedirects)
		}
		c.MaxRedirects = rc.MaxRedirects
	}
	if rc.DialTimeout != "" {
		d, err := time.ParseDuration(rc.DialTimeout)
		if err != nil {
			return nil, fmt.Errorf("dial_timeout: %v", err)
		}
		if d < 0 {
			return nil, fmt.Errorf("dial_timeout: must not be negative, got %s", d)
		}
		c.DialTimeout = d
	}
	if rc.Rate.RPS < 0 {
		return nil, fmt.Errorf("rate.rps: must not be negative, got %v", rc.Rate.RPS)
	}
	c.RateRPS = rc.Rate.RPS
	if rc.Rate.RPS > 0 {
		c.RateBurst = rc.Rate.Burst
		if c.RateBurst < 1 {
			c.RateBurst = 1
		}
	}
	return c, nil
}
