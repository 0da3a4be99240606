// Package webfarm provides a web farm service configured from the
// environment, for hosts that know their node identity at startup.
package webfarm

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/willibrandon/mtlog-xperience/platform"
)

// Config holds the web farm identity of this process.
type Config struct {
	ServerName string `env:"XPERIENCE_WEBFARM_SERVER_NAME"`
	Enabled    bool   `env:"XPERIENCE_WEBFARM_ENABLED" envDefault:"false"`
}

// Load reads Config from the environment. Files named in envFiles are loaded
// first with godotenv; missing files are ignored and variables already set
// in the environment win. An empty server name falls back to the host name.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse web farm configuration: %w", err)
	}

	if cfg.ServerName == "" {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "unknown"
		}
		cfg.ServerName = hostname
	}

	return cfg, nil
}

// Service returns cfg as a platform.WebFarmService.
func (cfg *Config) Service() platform.WebFarmService {
	return platform.StaticWebFarm{Name: cfg.ServerName, Enabled: cfg.Enabled}
}

// FromEnv loads the configuration and returns it as a service.
func FromEnv(envFiles ...string) (platform.WebFarmService, error) {
	cfg, err := Load(envFiles...)
	if err != nil {
		return nil, err
	}
	return cfg.Service(), nil
}
