// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"labelport/internal/domain"
)

// GlobalFileName is the TOML file looked up in the global config directory.
const GlobalFileName = "config.toml"

// RepoFileName is the YAML file looked up under .github in the repository.
const RepoFileName = "labelport.yml"

// Loader loads configuration from the global TOML file and the
// repository YAML file. Repository config takes precedence over global
// config, and both over the built-in defaults.
type Loader struct {
	repoRoot      string // repository checkout root
	globalConfDir string // e.g. ~/.config/labelport
	repoFile      string // explicit repo config path, overrides the default location
}

// NewLoader creates a new Loader for the given repository root.
func NewLoader(repoRoot string) *Loader {
	return &Loader{
		repoRoot:      repoRoot,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global
// config directory. This is useful for testing.
func NewLoaderWithGlobalDir(repoRoot, globalConfDir string) *Loader {
	return &Loader{
		repoRoot:      repoRoot,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "labelport")
}

// GlobalPath returns the path of the global config file.
func (l *Loader) GlobalPath() string {
	if l.globalConfDir == "" {
		return ""
	}
	return filepath.Join(l.globalConfDir, GlobalFileName)
}

// WithRepoFile returns a copy of the loader that reads the repository
// config from an explicit path instead of the default location.
func (l *Loader) WithRepoFile(path string) *Loader {
	clone := *l
	clone.repoFile = path
	return &clone
}

// RepoPath returns the path of the repository config file.
func (l *Loader) RepoPath() string {
	if l.repoFile != "" {
		return l.repoFile
	}
	return filepath.Join(l.repoRoot, ".github", RepoFileName)
}

// Load returns the merged configuration: defaults, overridden by the
// global file, overridden by the repository file. The result is
// validated; an empty priority list or overlapping category lists fail
// here rather than mid-run.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	global, err := l.loadTOML(l.GlobalPath())
	if err != nil {
		return nil, err
	}
	if global != nil {
		mergeConfig(cfg, global)
	}

	repo, err := l.loadYAML(l.RepoPath())
	if err != nil {
		return nil, err
	}
	if repo == nil && l.repoFile != "" {
		// An explicitly requested file must exist; only the default
		// location is optional.
		return nil, fmt.Errorf("config file %s: %w", l.repoFile, os.ErrNotExist)
	}
	if repo != nil {
		mergeConfig(cfg, repo)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadTOML reads a TOML config file. A missing file is not an error.
func (l *Loader) loadTOML(path string) (*domain.Config, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from config dirs
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg domain.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// loadYAML reads a YAML config file. A missing file is not an error.
func (l *Loader) loadYAML(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the repo root
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfig overwrites base fields with non-empty fields from overlay.
func mergeConfig(base, overlay *domain.Config) {
	if len(overlay.Priority) > 0 {
		base.Priority = overlay.Priority
	}
	if len(overlay.Classification) > 0 {
		base.Classification = overlay.Classification
	}
	if len(overlay.Effort) > 0 {
		base.Effort = overlay.Effort
	}
	if len(overlay.PRs) > 0 {
		base.PRs = overlay.PRs
	}
}
