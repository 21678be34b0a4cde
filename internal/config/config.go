// Package config loads server settings from an optional YAML file.
// Command-line flags override whatever the file says.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values can use the "30s"/"2m"
// notation.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("bad duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

type Config struct {
	Addr            string   `yaml:"addr"`
	PersistPath     string   `yaml:"persistPath"`
	LogLevel        string   `yaml:"logLevel"`
	DefaultParams   string   `yaml:"defaultParams"`
	GenerateTimeout Duration `yaml:"generateTimeout"`
}

func Default() Config {
	return Config{
		Addr:            ":8080",
		PersistPath:     "./data",
		LogLevel:        "info",
		DefaultParams:   "3x3",
		GenerateTimeout: Duration(30 * time.Second),
	}
}

// Load reads the config file at path, filling unset fields from Default.
// An empty path, or a missing file at the default location, yields the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Addr == "" {
		cfg.Addr = Default().Addr
	}
	if cfg.PersistPath == "" {
		cfg.PersistPath = Default().PersistPath
	}
	if cfg.DefaultParams == "" {
		cfg.DefaultParams = Default().DefaultParams
	}
	if cfg.GenerateTimeout <= 0 {
		cfg.GenerateTimeout = Default().GenerateTimeout
	}
	return cfg, nil
}
