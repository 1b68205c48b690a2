package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all hacknow configuration.
type Config struct {
	// ProjectDir is the base directory repositories are placed under.
	ProjectDir string `toml:"project_dir"`
	// SSH selects git@host:owner/name remotes for new clones.
	SSH bool `toml:"ssh"`
	// Host is the forge repositories are cloned from.
	Host string `toml:"host"`
}

const defaultHost = "github.com"

// HostOrDefault returns Host if set, otherwise github.com.
func (c Config) HostOrDefault() string {
	if c.Host != "" {
		return c.Host
	}
	return defaultHost
}

// ProjectDirOrDefault returns ProjectDir with a leading ~ expanded against
// home, or home itself when no project directory is configured.
func (c Config) ProjectDirOrDefault(home string) string {
	if c.ProjectDir == "" {
		return home
	}
	return ExpandHome(c.ProjectDir, home)
}

// ExpandHome replaces a leading "~" path element with home.
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// LoadFrom reads configuration from the given TOML file path.
// If the file does not exist, it returns an empty config without error.
// Environment variables always take precedence over file values:
//   - HACKNOW_PROJECT_DIR overrides project_dir
//   - HACKNOW_HOST        overrides host
func LoadFrom(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// DefaultConfigPath returns the default path for the hacknow config file.
func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "hacknow", "config.toml")
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HACKNOW_PROJECT_DIR"); v != "" {
		cfg.ProjectDir = v
	}
	if v := os.Getenv("HACKNOW_HOST"); v != "" {
		cfg.Host = v
	}
}
