package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigEnv names the environment variable that overrides the config path.
const ConfigEnv = "NOTES_CONFIG"

// DefaultDataFile is the data file name used when nothing else is configured.
const DefaultDataFile = "notes.json"

// Config is the on-disk configuration of the notes CLI.
type Config struct {
	DataFile    string `yaml:"data_file"`
	Format      string `yaml:"format"`
	LogLevel    string `yaml:"log_level"`
	DirectWrite bool   `yaml:"direct_write"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		DataFile: "",
		Format:   "auto",
		LogLevel: "info",
	}
}

// ConfigPath resolves where the config file lives.
func ConfigPath() (string, error) {
	if custom := os.Getenv(ConfigEnv); custom != "" {
		return custom, nil
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "notekeeper", "config.yaml"), nil
		}
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return "", fmt.Errorf("failed to determine home directory: %w", homeErr)
		}
		return filepath.Join(homeDir, ".notekeeper", "config.yaml"), nil
	}
	return filepath.Join(configDir, "notekeeper", "config.yaml"), nil
}

// LoadConfig reads the config file at path. A missing file yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file (%s): %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file (%s): %w", path, err)
	}

	cfg.DataFile = ExpandHome(cfg.DataFile)
	return cfg, nil
}

// WriteConfig stores cfg at path, creating parent directories.
func WriteConfig(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Level maps LogLevel to a slog level. Unknown values mean info.
func (c Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// ExpandHome expands a leading "~/" to the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// ResolveDataFile picks the data file: explicit flag, then the configured
// path, then the nearest DefaultDataFile above wd, then wd/DefaultDataFile.
func ResolveDataFile(flag string, cfg Config, wd string) string {
	if flag != "" {
		return ExpandHome(flag)
	}
	if cfg.DataFile != "" {
		return cfg.DataFile
	}
	if found, err := FindDataFile(wd, DefaultDataFile); err == nil {
		return found
	}
	return filepath.Join(wd, DefaultDataFile)
}
