package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

var validate = validator.New()

// FileConfig is the file form of the main options. Command line options
// take precedence.
type FileConfig struct {
	Format   string         `yaml:"format" validate:"omitempty,oneof=literal lit l json j yaml y"`
	Color    *bool          `yaml:"color"`
	MaxDepth int            `yaml:"maxDepth" validate:"gte=0"`
	Env      map[string]any `yaml:"env"`
}

func readFileConfig(path string) (*FileConfig, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}
	cfg := &FileConfig{}
	if err := yaml.UnmarshalWithOptions(d, cfg, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("could not decode config %s: %w", path, err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg *MainConfig) configOpt(_ *cli.Context, a string) (any, error) {
	fc, err := readFileConfig(a)
	if err != nil {
		return nil, err
	}
	cfg.Config = fc
	return nil, nil
}
