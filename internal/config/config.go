// Load envs from .env
// Load YAML config
// Provide default values

package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"portfolio-builder/pkg/logger"
)

type Config struct {
	Port        string `yaml:"port" env:"PORT"`
	DatabaseURL string `yaml:"database_url" env:"DATABASE_URL"`
	// AI gateway
	APIKey        string `yaml:"api_key" env:"OPENROUTER_API_KEY"`
	AIEndpoint    string `yaml:"ai_endpoint" env:"AI_ENDPOINT"`
	ParseModel    string `yaml:"parse_model" env:"PARSE_MODEL"`
	GenerateModel string `yaml:"generate_model" env:"GENERATE_MODEL"`
	// Paths
	UploadDir string `yaml:"upload_dir" env:"UPLOAD_DIR"`
}

// Load reads .env, an optional configs/config.yaml, then environment
// overrides. A missing AI key is not fatal here: the gateway reports it as
// a configuration error when a call is actually attempted.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	if data, err := os.ReadFile("configs/config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			logger.S().Fatalf("error parsing config.yaml: %v", err)
		}
	}

	// Override with env vars
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("OPENROUTER_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("AI_ENDPOINT"); v != "" {
		cfg.AIEndpoint = v
	}
	if v := os.Getenv("PARSE_MODEL"); v != "" {
		cfg.ParseModel = v
	}
	if v := os.Getenv("GENERATE_MODEL"); v != "" {
		cfg.GenerateModel = v
	}
	if v := os.Getenv("UPLOAD_DIR"); v != "" {
		cfg.UploadDir = v
	}

	// Set default values if not set
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.ParseModel == "" {
		cfg.ParseModel = "deepseek/deepseek-chat"
	}
	if cfg.GenerateModel == "" {
		cfg.GenerateModel = "deepseek/deepseek-r1:free"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}

	return cfg
}
