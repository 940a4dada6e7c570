package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultCapacity is the buffer capacity handed to the bounded writer
	// when the caller does not choose one; it matches the customary BUFSIZ.
	DefaultCapacity = 1024
)

const (
	DirPermissions  = 0o700
	FilePermissions = 0o600
)

// Config represents the application configuration
type Config struct {
	// Global settings
	Verbose bool `yaml:"verbose"`

	// Buffer settings
	Capacity int `yaml:"capacity"`

	// Timestamp settings
	TimeLayout string `yaml:"time_layout"` // Go reference-time layout

	// Logging settings
	LogLevel  string `yaml:"log_level"`  // debug, info, warn, error
	LogFormat string `yaml:"log_format"` // text, json

	// Output permissions (override defaults if needed)
	OutputDirPermissions  os.FileMode `yaml:"output_dir_permissions"`
	OutputFilePermissions os.FileMode `yaml:"output_file_permissions"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Verbose:               false,
		Capacity:              DefaultCapacity,
		TimeLayout:            time.ANSIC,
		LogLevel:              "warn",
		LogFormat:             "text",
		OutputDirPermissions:  DirPermissions,
		OutputFilePermissions: FilePermissions,
	}
}

// Validate checks the loaded values for usability
func (c *Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive, got %d", c.Capacity)
	}
	if c.TimeLayout == "" {
		return fmt.Errorf("time_layout must not be empty")
	}
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}
	return nil
}

// LoadConfig loads configuration from file, falling back to defaults
// It searches for config files in standard locations and merges with defaults
func LoadConfig(configPath string) (*Config, error) {
	return LoadConfigWithExplicitFlag(configPath, false)
}

// LoadConfigWithExplicitFlag loads configuration with a flag indicating if the path was explicitly provided
func LoadConfigWithExplicitFlag(configPath string, explicit bool) (*Config, error) {
	config := DefaultConfig()

	// If no config path specified, try default locations
	if configPath == "" {
		configPath = findConfigFile()
	}

	// If config file was explicitly specified but doesn't exist, return error
	if configPath != "" && !fileExists(configPath) && explicit {
		return nil, fmt.Errorf("failed to load config: config file not found: %s", configPath)
	}

	// If config file exists, load it
	if configPath != "" && fileExists(configPath) {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func (c *Config) SaveConfig(configPath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Ensure directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}

	if err := os.WriteFile(configPath, data, FilePermissions); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}

	return nil
}

// findConfigFile looks for config files in standard locations
func findConfigFile() string {
	locations := []string{
		".cbase.yaml",
		".cbase.yml",
	}

	// Add OS-specific config locations
	if home, err := os.UserHomeDir(); err == nil {
		// Always check home directory for dotfiles
		locations = append(locations,
			filepath.Join(home, ".cbase.yaml"),
			filepath.Join(home, ".cbase.yml"),
		)

		// Add OS-specific standard config locations
		switch runtime.GOOS {
		case "windows":
			// Windows: %APPDATA%\cbase\config.yaml
			if appData := os.Getenv("APPDATA"); appData != "" {
				locations = append(locations,
					filepath.Join(appData, "cbase", "config.yaml"),
					filepath.Join(appData, "cbase", "config.yml"),
				)
			} else {
				// Fallback to user profile
				locations = append(locations,
					filepath.Join(home, "AppData", "Roaming", "cbase", "config.yaml"),
					filepath.Join(home, "AppData", "Roaming", "cbase", "config.yml"),
				)
			}

		case "darwin":
			// macOS: ~/Library/Preferences/cbase/config.yaml
			locations = append(locations,
				filepath.Join(home, "Library", "Preferences", "cbase", "config.yaml"),
				filepath.Join(home, "Library", "Preferences", "cbase", "config.yml"),
			)

		default:
			// Linux/Unix: Follow XDG Base Directory specification
			// XDG_CONFIG_HOME or ~/.config/cbase/config.yaml
			if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
				locations = append(locations,
					filepath.Join(xdgConfig, "cbase", "config.yaml"),
					filepath.Join(xdgConfig, "cbase", "config.yml"),
				)
			} else {
				locations = append(locations,
					filepath.Join(home, ".config", "cbase", "config.yaml"),
					filepath.Join(home, ".config", "cbase", "config.yml"),
				)
			}
		}
	}

	for _, path := range locations {
		if fileExists(path) {
			return path
		}
	}

	return ""
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// GenerateExampleConfig creates an example configuration file
func GenerateExampleConfig() string {
	config := DefaultConfig()
	// Set some example values
	config.Verbose = true
	config.Capacity = 4096
	config.LogLevel = "info"

	data, _ := yaml.Marshal(config)
	return fmt.Sprintf(`# cbase configuration file
# Place this file at ~/.cbase.yaml or specify with --config

%s`, string(data))
}
