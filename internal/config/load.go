// internal/config/load.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file and resolves secrets from the environment.
// Env values win over literal values in the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, os.Getenv)
}

// Parse decodes YAML and resolves secrets with getenv.
func Parse(data []byte, getenv func(string) string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	cfg.NeatQueue.APIKey = resolveSecret(getenv, cfg.NeatQueue.APIKeyEnv, DefaultAPIKeyEnv, cfg.NeatQueue.APIKey)
	cfg.Telegram.Token = resolveSecret(getenv, cfg.Telegram.TokenEnv, "", cfg.Telegram.Token)

	for ui := range cfg.Units {
		d := &cfg.Units[ui].Discord
		d.Token = resolveSecret(getenv, d.TokenEnv, "", d.Token)
	}

	return &cfg, nil
}

func resolveSecret(getenv func(string) string, name, fallbackName, literal string) string {
	if name == "" {
		name = fallbackName
	}
	if name != "" {
		if v := getenv(name); v != "" {
			return v
		}
	}
	return literal
}
