package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultRoot   = "."
	defaultOutput = "assets/css/utilcss.css"
)

// ProjectConfig holds the contents of .utilcss/config.yaml.
type ProjectConfig struct {
	Version string   `yaml:"version"`
	Root    string   `yaml:"root"`
	Output  string   `yaml:"output"`
	Theme   string   `yaml:"theme"`
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// loadProjectConfig reads .utilcss/config.yaml from the current directory.
// Returns nil (no error) if the file does not exist.
func loadProjectConfig() (*ProjectConfig, error) {
	data, err := os.ReadFile(".utilcss/config.yaml")
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolveSetting applies the fallback chain: explicit flag value, project
// config value, built-in default.
func resolveSetting(flagValue, configValue, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	if configValue != "" {
		return configValue
	}
	return fallback
}
