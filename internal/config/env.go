package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Variables read from the process environment and ~/.rnadoc/.env.
const (
	RegistryEnv         = "RNADOC_REGISTRY"
	ManualPropertiesEnv = "RNADOC_MANUAL_PROPERTIES"
	DebugEnv            = "RNADOC_DEBUG"
)

var envHelp = []struct{ key, help string }{
	{RegistryEnv, "registry dump to read; overrides registry_path"},
	{ManualPropertiesEnv, "extra manual property tables, separated like PATH"},
	{DebugEnv, "1 to print debug logs"},
}

// Env holds the RNADOC_* settings. Process environment values win over the
// ones in ~/.rnadoc/.env; empty values count as unset.
type Env struct {
	Registry         string
	ManualProperties []string
	Debug            bool
}

// EnvPath returns the absolute path to ~/.rnadoc/.env.
func EnvPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".env"), nil
}

// LoadEnv resolves every RNADOC_* setting.
func LoadEnv() (*Env, error) {
	p, err := EnvPath()
	if err != nil {
		return nil, err
	}
	values := map[string]string{}
	f, err := os.Open(p)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("cannot open env file %s: %w", p, err)
	default:
		values, err = parseEnvFile(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("invalid env file %s: %w", p, err)
		}
	}
	for _, e := range envHelp {
		if v := os.Getenv(e.key); v != "" {
			values[e.key] = v
		}
	}

	env := &Env{}
	if env.Registry, err = ExpandPath(strings.TrimSpace(values[RegistryEnv])); err != nil {
		return nil, err
	}
	for _, part := range filepath.SplitList(values[ManualPropertiesEnv]) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		expanded, err := ExpandPath(part)
		if err != nil {
			return nil, err
		}
		env.ManualProperties = append(env.ManualProperties, expanded)
	}
	if v := strings.TrimSpace(values[DebugEnv]); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: want a boolean, got %q", DebugEnv, v)
		}
		env.Debug = b
	}
	return env, nil
}

// parseEnvFile reads KEY=VALUE lines. Blank lines and # comments are skipped,
// an "export " prefix is allowed and matching quotes around VALUE are removed.
// Keys outside the RNADOC_ namespace are ignored; unknown RNADOC_ keys are
// reported so typos do not go unnoticed.
func parseEnvFile(r io.Reader) (map[string]string, error) {
	known := map[string]bool{}
	for _, e := range envHelp {
		known[e.key] = true
	}

	out := map[string]string{}
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		k, v, ok := strings.Cut(line, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("line %d: want KEY=VALUE", n)
		}
		if !strings.HasPrefix(k, "RNADOC_") {
			continue
		}
		if !known[k] {
			return nil, fmt.Errorf("line %d: unknown key %s", n, k)
		}
		v = strings.TrimSpace(v)
		if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
			v = v[1 : len(v)-1]
		}
		out[k] = v
	}
	return out, scanner.Err()
}

// WriteEnvTemplate creates ~/.rnadoc/.env listing every key with an empty
// value. It reports false when the file already exists and leaves it alone.
func WriteEnvTemplate() (bool, error) {
	p, err := EnvPath()
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(p); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("cannot stat env file %s: %w", p, err)
	}

	var b strings.Builder
	for _, e := range envHelp {
		fmt.Fprintf(&b, "# %s\n%s=\n", e.help, e.key)
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return false, fmt.Errorf("cannot create config dir: %w", err)
	}
	if err := os.WriteFile(p, []byte(b.String()), 0o600); err != nil {
		return false, fmt.Errorf("cannot write env template %s: %w", p, err)
	}
	return true, nil
}
