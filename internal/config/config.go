package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Environment overrides, checked after the config file is loaded.
const (
	ProjectsDirEnv = "PROJECTS_DIR"
	EditorEnv      = "PROJECTS_EDITOR"
	DatabaseEnv    = "PROJECTS_DB"
	ConfigDirEnv   = "PROJECTS_CONFIG_DIR"
	LogLevelEnv    = "PROJECTS_LOG_LEVEL"
)

// Config represents the application configuration.
type Config struct {
	ProjectsDir  string   `json:"projects_dir"`
	Editor       string   `json:"editor"`
	DatabasePath string   `json:"database_path"`
	ExcludedDirs []string `json:"excluded_dirs"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		ProjectsDir:  "~/projects",
		Editor:       "e",
		DatabasePath: "~/.local/share/projects/frecency.db",
		ExcludedDirs: []string{"node_modules"},
	}
}

// ConfigDir returns the configuration directory path.
func ConfigDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(ConfigDirEnv)); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "projects"), nil
}

// ConfigPath returns the configuration file path.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// Load loads configuration from the config file, creating it with defaults
// when missing, then applies environment overrides.
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(cfg); err != nil {
			return nil, err
		}
	} else {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, err
		}
		cfg = &Config{}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	if cfg.Editor == "" {
		cfg.Editor = "e"
	}
	if cfg.ExcludedDirs == nil {
		cfg.ExcludedDirs = []string{"node_modules"}
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if dir := strings.TrimSpace(os.Getenv(ProjectsDirEnv)); dir != "" {
		c.ProjectsDir = dir
	}
	if editor := strings.TrimSpace(os.Getenv(EditorEnv)); editor != "" {
		c.Editor = editor
	}
	if db := strings.TrimSpace(os.Getenv(DatabaseEnv)); db != "" {
		c.DatabasePath = db
	}
}

// Save saves configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// GetProjectsDir returns the expanded projects directory path.
func (c *Config) GetProjectsDir() (string, error) {
	return ExpandPath(c.ProjectsDir)
}

// GetDatabasePath returns the expanded database path.
func (c *Config) GetDatabasePath() (string, error) {
	return ExpandPath(c.DatabasePath)
}

// LogLevel returns the configured log level name, empty when unset.
func LogLevel() string {
	return strings.TrimSpace(os.Getenv(LogLevelEnv))
}
