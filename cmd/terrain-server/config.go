package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/twpayne/go-terrain"
)

// A Config holds all server settings.
type Config struct {
	Listen       string        `yaml:"listen"`
	HeightmapDir string        `yaml:"heightmap_dir"`
	LevelCount   int           `yaml:"level_count"`
	Theme        string        `yaml:"theme"`
	Scale        terrain.Scale `yaml:"scale"`
	Logging      LoggingConfig `yaml:"logging"`
}

// A LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// defaultConfig returns a Config with sensible default values.
func defaultConfig() *Config {
	return &Config{
		Listen:       ":8080",
		HeightmapDir: ".",
		LevelCount:   20,
		Theme:        "sci-fi",
		Scale: terrain.Scale{
			WidthKM:        10,
			HeightKM:       10,
			MaxElevationKM: 5,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

// loadConfig loads configuration with priority: defaults < file. Flags
// are applied by the caller on top.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	return cfg, nil
}
