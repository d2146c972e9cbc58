// Package config loads and saves the demo CLI's YAML configuration: the
// default HMAC hash algorithm, the default HKDF output length, and general
// logging/debug switches.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/keymaclab/keymac/internal/hashdispatch"
)

// Config represents the application configuration.
type Config struct {
	// HMAC configuration
	HMAC struct {
		HashAlgorithm string `yaml:"hashAlgorithm"`
		KeyFile       string `yaml:"keyFile"`
	} `yaml:"hmac"`

	// HKDF configuration
	HKDF struct {
		HashAlgorithm string `yaml:"hashAlgorithm"`
		DefaultOutLen int    `yaml:"defaultOutLen"`
	} `yaml:"hkdf"`

	// General settings
	General struct {
		LogLevel string `yaml:"logLevel"`
		Debug    bool   `yaml:"debug"`
	} `yaml:"general"`
}

// LoadConfig loads the configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// If no config path is provided, use default
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		configPath = filepath.Join(homeDir, ".keymac", "config.yaml")
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// Create default config
		config := createDefaultConfig()
		if err := SaveConfig(configPath, config); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return config, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse config
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves the configuration to the specified file
func SaveConfig(configPath string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Algorithm resolves the configured HMAC hash algorithm name to a
// hashdispatch.Algorithm, falling back to SHA-256 on an unrecognized name.
func (c *Config) Algorithm() hashdispatch.Algorithm {
	alg, ok := algorithmByName(c.HMAC.HashAlgorithm)
	if !ok {
		return hashdispatch.SHA256
	}
	return alg
}

// HKDFAlgorithm resolves the configured HKDF hash algorithm name, falling
// back to SHA-256 on an unrecognized name.
func (c *Config) HKDFAlgorithm() hashdispatch.Algorithm {
	alg, ok := algorithmByName(c.HKDF.HashAlgorithm)
	if !ok {
		return hashdispatch.SHA256
	}
	return alg
}

func algorithmByName(name string) (hashdispatch.Algorithm, bool) {
	for _, alg := range hashdispatch.Algorithms {
		if alg.String() == name {
			return alg, true
		}
	}
	return 0, false
}

// createDefaultConfig creates a default configuration
func createDefaultConfig() *Config {
	config := &Config{}

	// Set HMAC defaults
	config.HMAC.HashAlgorithm = "sha256"
	config.HMAC.KeyFile = "hmac_key.bin"

	// Set HKDF defaults
	config.HKDF.HashAlgorithm = "sha256"
	config.HKDF.DefaultOutLen = 32

	// Set General defaults
	config.General.LogLevel = "info"
	config.General.Debug = false

	return config
}
