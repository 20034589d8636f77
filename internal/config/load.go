package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	EnvAzureAPIKey     = "AZURE_API_KEY"
	EnvAzureEndpoint   = "AZURE_ENDPOINT"
	EnvAzureDeployment = "AZURE_DEPLOYMENT"
	EnvGeminiAPIKey    = "GEMINI_API_KEY"
)

// Load reads the yaml file at path, overlays the secrets from the
// environment and validates the result. An empty path skips the file and
// relies on defaults plus environment.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.LLM.Azure.APIKey = os.Getenv(EnvAzureAPIKey)
	cfg.LLM.Azure.Endpoint = os.Getenv(EnvAzureEndpoint)
	cfg.LLM.Azure.Deployment = os.Getenv(EnvAzureDeployment)
	cfg.LLM.Gemini.APIKey = os.Getenv(EnvGeminiAPIKey)
}
