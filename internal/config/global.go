// Where: internal/config/global.go
// What: Global config load/save helpers.
// Why: Manage ~/.stackforge/config.yaml consistently.
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/stackforge-dev/stackforge/internal/meta"
	"github.com/stackforge-dev/stackforge/internal/scaffold"
)

// maxRecentProjects caps the recent list so the config file stays small.
const maxRecentProjects = 10

// GlobalConfig represents the ~/.stackforge/config.yaml global configuration.
// It tracks recently generated projects and the default answers used to seed
// the prompt flow.
type GlobalConfig struct {
	Version  int              `yaml:"version"`
	Defaults scaffold.Answers `yaml:"defaults"`
	Recent   []RecentProject  `yaml:"recent,omitempty"`
}

// RecentProject stores a generated project's directory and creation time.
type RecentProject struct {
	Name      string `yaml:"name"`
	Path      string `yaml:"path"`
	CreatedAt string `yaml:"created_at"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Version:  1,
		Defaults: scaffold.Defaults(),
	}
}

// GlobalConfigPath returns the path to the global config file.
// Respects STACKFORGE_CONFIG_PATH and STACKFORGE_CONFIG_HOME environment variables.
func GlobalConfigPath() (string, error) {
	if override := strings.TrimSpace(os.Getenv(meta.EnvPrefix + "_CONFIG_PATH")); override != "" {
		path := override
		if !filepath.IsAbs(path) {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
		}
		return path, nil
	}
	if override := strings.TrimSpace(os.Getenv(meta.EnvPrefix + "_CONFIG_HOME")); override != "" {
		return filepath.Join(override, "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.HomeDir, "config.yaml"), nil
}

// PresetsDir returns the directory holding saved answer presets.
func PresetsDir() (string, error) {
	path, err := GlobalConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(path), meta.PresetsDir), nil
}

// EnsureGlobalConfig creates the global config file if it doesn't exist.
func EnsureGlobalConfig() error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return SaveGlobalConfig(path, DefaultGlobalConfig())
		}
		return err
	}
	return nil
}

// LoadGlobalConfig reads and parses the global configuration file.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, err
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, err
	}
	return cfg, nil
}

// LoadGlobalConfigOrDefault loads the global config, falling back to defaults
// when the file is missing or unreadable.
func LoadGlobalConfigOrDefault() GlobalConfig {
	path, err := GlobalConfigPath()
	if err != nil {
		return DefaultGlobalConfig()
	}
	cfg, err := LoadGlobalConfig(path)
	if err != nil {
		return DefaultGlobalConfig()
	}
	if cfg.Defaults.ProjectName == "" {
		cfg.Defaults = scaffold.Defaults()
	}
	return cfg
}

// SaveGlobalConfig writes a GlobalConfig to the specified path. The file is
// staged in the same directory and renamed into place so a crash mid-write
// never leaves a truncated config behind.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".config-*.yaml")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

// RecordRecentProject prepends a project to the recent list, dropping
// duplicates by path and capping the list length.
func RecordRecentProject(cfg GlobalConfig, name, path string, now time.Time) GlobalConfig {
	entry := RecentProject{
		Name:      name,
		Path:      path,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}

	recent := make([]RecentProject, 0, len(cfg.Recent)+1)
	recent = append(recent, entry)
	for _, existing := range cfg.Recent {
		if existing.Path == path {
			continue
		}
		recent = append(recent, existing)
	}
	if len(recent) > maxRecentProjects {
		recent = recent[:maxRecentProjects]
	}

	cfg.Recent = recent
	return cfg
}

// SortedRecent returns the recent projects newest first.
func SortedRecent(cfg GlobalConfig) []RecentProject {
	recent := append([]RecentProject{}, cfg.Recent...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt > recent[j].CreatedAt
	})
	return recent
}
