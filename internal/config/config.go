// Package config loads the navctl configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Beep206/CyberVPN-sub013/pkg/domain"
)

// Redis configures the optional Redis-backed pending-route store. An
// empty Addr keeps the in-memory slot.
type Redis struct {
	Addr string `yaml:"addr"`
	Key  string `yaml:"key"`
	// TTL is a Go duration string ("5m", "1h"). Empty means no expiry.
	TTL string `yaml:"ttl"`
}

// TTLDuration parses the TTL, returning zero for empty or invalid values.
func (r Redis) TTLDuration() time.Duration {
	if r.TTL == "" {
		return 0
	}
	d, err := time.ParseDuration(r.TTL)
	if err != nil {
		return 0
	}
	return d
}

// Config is the navctl configuration. Zero values fall back to defaults.
type Config struct {
	Listen       string            `yaml:"listen"`
	LogLevel     string            `yaml:"log_level"`
	RoutingTable string            `yaml:"routing_table"`
	Redis        Redis             `yaml:"redis"`
	Paths        map[string]string `yaml:"paths"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Listen:   ":8080",
		LogLevel: "info",
	}
}

// Load reads a YAML config file. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	return cfg, nil
}

// NavPaths resolves the canonical path set, applying any overrides from
// the paths section.
func (c *Config) NavPaths() domain.Paths {
	p := domain.DefaultPaths()
	for key, value := range c.Paths {
		switch key {
		case "splash":
			p.Splash = value
		case "root":
			p.Root = value
		case "login":
			p.Login = value
		case "signup":
			p.Signup = value
		case "reset":
			p.Reset = value
		case "onboarding":
			p.Onboarding = value
		case "quick_setup":
			p.QuickSetup = value
		case "home":
			p.Home = value
		}
	}
	return p
}
