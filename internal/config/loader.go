package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"vramest/internal/common/fsutil"
)

// EnvConfig names the environment variable holding an explicit config path.
const EnvConfig = "VRAMEST_CONFIG"

// Config holds optional overrides for the CLI.
// Zero values mean "unspecified"; flags and built-in defaults fill them in.
type Config struct {
	LogLevel     string         `json:"log_level" yaml:"log_level" toml:"log_level"`
	Output       string         `json:"output" yaml:"output" toml:"output"`
	Quantization map[string]int `json:"quantization" yaml:"quantization" toml:"quantization"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	p, err := fsutil.ExpandHome(path)
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(p)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", p, err)
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", p, err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", p, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// Discover returns the config path to load: $VRAMEST_CONFIG when set,
// otherwise the first of <user config dir>/vramest/config.{yaml,yml,toml,json}
// that exists. It returns "" when there is nothing to load.
func Discover() string {
	if v := strings.TrimSpace(os.Getenv(EnvConfig)); v != "" {
		return v
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	base := filepath.Join(dir, "vramest")
	return fsutil.FirstRegularFile(
		filepath.Join(base, "config.yaml"),
		filepath.Join(base, "config.yml"),
		filepath.Join(base, "config.toml"),
		filepath.Join(base, "config.json"),
	)
}
