package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port    int    `yaml:"port"`
		AnonKey string `yaml:"anonKey"`
	} `yaml:"server"`

	// Provider selects the upstream model service: "openrouter" (default)
	// or "gemini".
	Provider string `yaml:"provider"`

	OpenRouter struct {
		ApiKey  string `yaml:"apiKey"`
		URL     string `yaml:"url"`
		Model   string `yaml:"model"`
		Referer string `yaml:"referer"`
		Title   string `yaml:"title"`
	} `yaml:"openrouter"`

	Gemini struct {
		ApiKey string `yaml:"apiKey"`
		Model  string `yaml:"model"`
	} `yaml:"gemini"`

	Cognito struct {
		AppClientId     string `yaml:"appClientId"`
		AppClientSecret string `yaml:"appClientSecret"`
		UserPoolId      string `yaml:"userPoolId"`
		Region          string `yaml:"region"`
	} `yaml:"cognito"`

	Database struct {
		URI string `yaml:"uri"`
	} `yaml:"database"`

	Redis struct {
		Address  string `yaml:"address"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// LoadConfig reads the configuration file and fills in defaults for fields
// the file leaves empty.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3001
	}
	if cfg.Provider == "" {
		cfg.Provider = "openrouter"
	}
	if cfg.OpenRouter.URL == "" {
		cfg.OpenRouter.URL = "https://openrouter.ai/api/v1/chat/completions"
	}
	if cfg.OpenRouter.Model == "" {
		cfg.OpenRouter.Model = "openai/gpt-4-turbo-preview"
	}
	if cfg.OpenRouter.Title == "" {
		cfg.OpenRouter.Title = "IdeaNest"
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-2.5-flash"
	}
	if cfg.Redis.Address == "" {
		cfg.Redis.Address = "localhost:6379"
	}

	return &cfg, nil
}
