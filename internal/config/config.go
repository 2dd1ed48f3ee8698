package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMaterial = "sio2"
	DefaultMinUm    = 1.2
	DefaultMaxUm    = 1.7
	DefaultSamples  = 200
	DefaultQuantity = "n"
)

// Config drives the CLI: which material, which spectral band [um], how
// many sample points and which derived quantity to present.
type Config struct {
	Material string     `yaml:"material"`
	Band     BandConfig `yaml:"band"`
	Samples  int        `yaml:"samples"`
	Quantity string     `yaml:"quantity"`
}

// BandConfig is a wavelength band in micrometers.
type BandConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func DefaultConfig() *Config {
	return &Config{
		Material: DefaultMaterial,
		Band:     BandConfig{Min: DefaultMinUm, Max: DefaultMaxUm},
		Samples:  DefaultSamples,
		Quantity: DefaultQuantity,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
