package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds demo defaults loadable from a YAML file.
type Config struct {
	// Sizes are the transform lengths the demo constructs handles for.
	Sizes []int64 `yaml:"sizes"`

	// Scale is the scale factor passed as construction argument.
	Scale float64 `yaml:"scale"`

	// Verbosity is the klog level unless overridden by flag or env.
	Verbosity int64 `yaml:"verbosity"`
}

func defaultConfig() Config {
	return Config{
		Sizes: []int64{1024, 2048},
		Scale: 1.0,
	}
}

// loadConfig reads path when non-empty, applying defaults for unset
// fields.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "failed to read config file")
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrap(err, "failed to parse config file")
	}

	if len(cfg.Sizes) == 0 {
		cfg.Sizes = defaultConfig().Sizes
	}

	if cfg.Scale == 0 {
		cfg.Scale = 1.0
	}

	return cfg, nil
}
