package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Output formats understood by the export command
const (
	FormatTable = "table"
	FormatTOML  = "toml"
)

// Config represents the application configuration
type Config struct {
	Color     bool   `toml:"color"`
	TrueColor bool   `toml:"true_color"`
	Format    string `toml:"format"`
}

// ValidFormat reports whether format is a known output format
func ValidFormat(format string) bool {
	return format == FormatTable || format == FormatTOML
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardtable", "config.toml")
}

func defaultConfig() *Config {
	return &Config{
		Color:     true,
		TrueColor: true,
		Format:    FormatTable,
	}
}

// LoadConfig loads the config file, creating it with defaults on first use
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	// Missing keys keep their defaults
	config := defaultConfig()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	if !ValidFormat(config.Format) {
		return nil, fmt.Errorf("unknown format in %s: %q", configPath, config.Format)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := defaultConfig()
	if err := writeConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

// SetFormat sets the default output format in the config
func SetFormat(format string) error {
	if !ValidFormat(format) {
		return fmt.Errorf("unknown format: %s (expected %s or %s)", format, FormatTable, FormatTOML)
	}

	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.Format = format
	return writeConfig(config)
}
