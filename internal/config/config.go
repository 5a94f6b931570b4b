package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/tada/internal/logging"
)

const (
	configFileName  = "config.yaml"
	projectFileName = ".tada.yaml"
)

// Config holds the user-tunable settings. Command-line flags override it.
type Config struct {
	Theme     string `yaml:"theme"`      // classic | neon | mono
	Color     string `yaml:"color"`      // auto | always | never
	LogFile   string `yaml:"log_file"`   // empty disables logging
	LogLevel  string `yaml:"log_level"`  // debug | info | warn | error
	Seed      bool   `yaml:"seed"`       // start with the two sample items
	AltScreen bool   `yaml:"alt_screen"` // run in the alternate screen buffer
}

// DefaultConfig returns the settings used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		Theme:     "classic",
		Color:     "auto",
		LogLevel:  "info",
		Seed:      true,
		AltScreen: true,
	}
}

// globalDir returns ~/.tada.
func globalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".tada"), nil
}

// searchPaths lists the files Load tries, in order, when no path is given.
func searchPaths() []string {
	paths := []string{projectFileName}
	if dir, err := globalDir(); err == nil {
		paths = append(paths, filepath.Join(dir, configFileName))
	}
	return paths
}

// Load reads the config at path. With an empty path it tries .tada.yaml in
// the working directory, then ~/.tada/config.yaml, and falls back to defaults.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	if path != "" {
		return loadFile(path)
	}
	for _, p := range searchPaths() {
		cfg, err := loadFile(p)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		return cfg, err
	}
	return DefaultConfig(), nil
}

func loadFile(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the rest of the program cannot interpret.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	switch strings.ToLower(c.Color) {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("unknown color mode %q", c.Color)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
