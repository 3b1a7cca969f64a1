// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/sugarcut/internal/challenge"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Challenge ChallengeConfig `toml:"challenge"`
	Storage   StorageConfig   `toml:"storage"`
	Log       LogConfig       `toml:"log"`
}

// ChallengeConfig maps challenge-related settings.
type ChallengeConfig struct {
	Length   *int    `toml:"length"`
	Timezone *string `toml:"timezone"`
}

// StorageConfig maps persistence settings.
type StorageConfig struct {
	DB *string `toml:"db"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level  *string `toml:"level"`
	Format *string `toml:"format"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return FileConfig{}, err
	}
	return cfg, nil
}

// Validate checks values that can be checked without side effects.
func (c FileConfig) Validate() error {
	if c.Challenge.Length != nil {
		if !challenge.Length(*c.Challenge.Length).Valid() {
			return fmt.Errorf("challenge.length: %w", challenge.ErrInvalidLength)
		}
	}
	if c.Challenge.Timezone != nil {
		if _, err := LoadLocation(*c.Challenge.Timezone); err != nil {
			return fmt.Errorf("challenge.timezone: %w", err)
		}
	}
	return nil
}

// LoadLocation resolves an IANA zone name. Empty and "Local" mean the host zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
