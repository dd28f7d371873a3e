package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

type config struct {
	// Listen is the TCP address the service listens on.
	Listen string `yaml:"listen"`
	// DB is the path of the result store database. Empty disables the
	// store.
	DB string `yaml:"db"`
}

func defaultConfig() *config {
	return &config{Listen: "localhost:3636"}
}

func readConfig(path string) (*config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
