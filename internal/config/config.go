package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSeparator   = ", "
	DefaultChartHeight = 8
	DefaultTheme       = "chalkboard"
	DefaultFirstLabel  = "class 1"
	DefaultCopyLabel   = "class 2 (copy of class 1)"
	DefaultMergedLabel = "class 3 (class 1 + class 2)"
)

type Config struct {
	Separator   string       `yaml:"separator"`
	Prompts     bool         `yaml:"prompts"`
	Plain       bool         `yaml:"plain"`
	Verbose     bool         `yaml:"verbose"`
	Theme       string       `yaml:"theme"`
	ChartHeight int          `yaml:"chart_height"`
	Labels      LabelsConfig `yaml:"labels"`
}

type LabelsConfig struct {
	First  string `yaml:"first"`
	Copy   string `yaml:"copy"`
	Merged string `yaml:"merged"`
}

func DefaultConfig() *Config {
	return &Config{
		Separator:   DefaultSeparator,
		Prompts:     true,
		ChartHeight: DefaultChartHeight,
		Theme:       DefaultTheme,
		Labels: LabelsConfig{
			First:  DefaultFirstLabel,
			Copy:   DefaultCopyLabel,
			Merged: DefaultMergedLabel,
		},
	}
}

// Load reads a yaml file over the defaults; keys missing from the file
// keep their default values.
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
