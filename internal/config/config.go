package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the in-memory representation of ~/.rnadoc/rnadoc.yaml.
type Config struct {
	// RegistryPath is the registry dump written by the in-host exporter.
	RegistryPath string `yaml:"registry_path"`
	// ManualProperties lists extra manual property tables, applied in order
	// after the built-in one.
	ManualProperties []string `yaml:"manual_properties,omitempty"`
}

// Dir returns the absolute path to ~/.rnadoc/.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".rnadoc"), nil
}

// ConfigPath returns the absolute path to ~/.rnadoc/rnadoc.yaml.
func ConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "rnadoc.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the Config written by rnadoc init.
func DefaultConfig() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return &Config{
		RegistryPath: filepath.Join(dir, "registry.yaml"),
	}, nil
}

// Load reads and parses ~/.rnadoc/rnadoc.yaml. A missing file yields
// DefaultConfig.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	// Expand ~ at load time.
	cfg.RegistryPath, err = ExpandPath(cfg.RegistryPath)
	if err != nil {
		return nil, err
	}
	for i, p := range cfg.ManualProperties {
		if cfg.ManualProperties[i], err = ExpandPath(p); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// Save marshals cfg and writes it to ~/.rnadoc/rnadoc.yaml.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}

// ResolveRegistryPath returns the registry dump to read. An explicit path
// wins, then RNADOC_REGISTRY, then cfg.RegistryPath.
func ResolveRegistryPath(cfg *Config, env *Env, explicit string) (string, error) {
	if explicit != "" {
		return ExpandPath(explicit)
	}
	if env != nil && env.Registry != "" {
		return env.Registry, nil
	}
	if cfg == nil || cfg.RegistryPath == "" {
		return "", fmt.Errorf("no registry dump configured (set %s or registry_path in ~/.rnadoc/rnadoc.yaml)", RegistryEnv)
	}
	return cfg.RegistryPath, nil
}

// ManualPropertyTables returns the extra manual property tables to apply:
// the config's, then RNADOC_MANUAL_PROPERTIES.
func ManualPropertyTables(cfg *Config, env *Env) []string {
	var out []string
	if cfg != nil {
		out = append(out, cfg.ManualProperties...)
	}
	if env != nil {
		out = append(out, env.ManualProperties...)
	}
	return out
}
