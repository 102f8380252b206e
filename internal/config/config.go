// Package config handles loading and saving user configuration for sudago.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the tool configuration file name inside the config directory.
const FileName = "config.yaml"

// Config holds the tool-level defaults applied when the corresponding CLI
// flags are not given.
type Config struct {
	DictionaryPath     string `yaml:"dictionary_path"`
	SettingsPath       string `yaml:"settings_path,omitempty"`
	ResourcePath       string `yaml:"resource_path,omitempty"`
	UserDictionaryPath string `yaml:"user_dictionary_path,omitempty"`
	Mode               string `yaml:"mode,omitempty"` // A, B, or C
}

// Load reads the configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	out, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "sudago"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// DefaultDictionaryDir returns the directory fetched dictionaries are
// installed into.
func DefaultDictionaryDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "dict"), nil
}
