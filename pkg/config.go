package pybump

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory.
const DefaultConfigFile = ".pybump.yml"

// Config represents the optional .pybump.yml file.
type Config struct {
	Manifest string   `yaml:"manifest,omitempty"`
	Bump     BumpType `yaml:"bump,omitempty"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{Manifest: DefaultManifest, Bump: DefaultBumpType}
}

// LoadConfig reads path and fills unset fields with defaults.
// A relative manifest set in the file is resolved against the file's
// directory. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := unmarshalConfig(data)
	if err != nil {
		return Config{}, err
	}
	if cfg.Manifest != "" && !filepath.IsAbs(cfg.Manifest) {
		cfg.Manifest = filepath.Join(filepath.Dir(path), cfg.Manifest)
	}
	return cfg.withDefaults()
}

// ParseConfig parses YAML config content. Paths are kept as written.
func ParseConfig(data []byte) (Config, error) {
	cfg, err := unmarshalConfig(data)
	if err != nil {
		return Config{}, err
	}
	return cfg.withDefaults()
}

func unmarshalConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func (cfg Config) withDefaults() (Config, error) {
	if cfg.Manifest == "" {
		cfg.Manifest = DefaultManifest
	}
	if cfg.Bump == "" {
		cfg.Bump = DefaultBumpType
	}
	if _, err := ParseBumpType(string(cfg.Bump)); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
