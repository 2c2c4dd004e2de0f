// Package config handles configuration file loading and root directory
// discovery.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// AppName is the directory name used under the XDG config and data homes.
const AppName = "flavours"

// Environment variables that override the default locations.
const (
	EnvConfigFile    = "FLAVOURS_CONFIG_FILE"
	EnvDataDirectory = "FLAVOURS_DATA_DIRECTORY"
)

// Default configuration values.
const (
	DefaultOutputFormat = "plain"
	DefaultListPattern  = "*"
)

// Config represents the flavours configuration.
type Config struct {
	Directories DirectoriesConfig `toml:"directories"`
	List        ListConfig        `toml:"list"`
	Output      OutputConfig      `toml:"output"`
}

// DirectoriesConfig overrides the config and data roots.
type DirectoriesConfig struct {
	Config string `toml:"config"` // Empty = directory of the config file
	Data   string `toml:"data"`   // Empty = $XDG_DATA_HOME/flavours
}

// ListConfig holds defaults for the list command.
type ListConfig struct {
	Lines bool `toml:"lines"` // One scheme per line
}

// OutputConfig holds default output settings.
type OutputConfig struct {
	Format string `toml:"format"` // plain, lines, long, json
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		List: ListConfig{
			Lines: false,
		},
		Output: OutputConfig{
			Format: DefaultOutputFormat,
		},
	}
}

// ConfigPath returns the path to the config file.
// FLAVOURS_CONFIG_FILE wins, then XDG_CONFIG_HOME, then ~/.config.
func ConfigPath() string {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return path
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, AppName, "config.toml")
}

// DataPath returns the path to the data directory.
// FLAVOURS_DATA_DIRECTORY wins, then XDG_DATA_HOME, then ~/.local/share.
func DataPath() string {
	if path := os.Getenv(EnvDataDirectory); path != "" {
		return path
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, AppName)
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Roots returns the absolute config and data roots.
// configPath is the config file in use; its directory is the config root
// unless [directories] config is set. The data root is taken from dataDir
// (the --directory flag), then FLAVOURS_DATA_DIRECTORY, then
// [directories] data, then the XDG default.
func (c *Config) Roots(configPath, dataDir string) (configRoot, dataRoot string, err error) {
	if configPath == "" {
		configPath = ConfigPath()
	}

	configRoot = c.Directories.Config
	if configRoot == "" {
		configRoot = filepath.Dir(configPath)
	}

	dataRoot = dataDir
	if dataRoot == "" {
		dataRoot = os.Getenv(EnvDataDirectory)
	}
	if dataRoot == "" {
		dataRoot = c.Directories.Data
	}
	if dataRoot == "" {
		dataRoot = DataPath()
	}
	if dataRoot == "" {
		return "", "", errors.New("unable to determine data directory")
	}

	if configRoot, err = ExpandPath(configRoot); err != nil {
		return "", "", err
	}
	if dataRoot, err = ExpandPath(dataRoot); err != nil {
		return "", "", err
	}
	return configRoot, dataRoot, nil
}

// ExpandPath turns a path with a leading "~" or a relative path into a
// clean absolute path.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}

	return filepath.Abs(path)
}
