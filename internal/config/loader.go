package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"analizador/internal/analyzer"
	"analizador/internal/logger"
	"analizador/internal/sentiment"
)

// SessionConfig holds the session logging and storage settings.
type SessionConfig struct {
	LogsDir    string `yaml:"logs_dir"`
	ArchiveDir string `yaml:"archive_dir"`
	RedisURL   string `yaml:"redis_url"`
}

// Config represents the structure of config.yaml.
type Config struct {
	Analyzer  analyzer.Config     `yaml:"analyzer"`
	Sentiment sentiment.LLMConfig `yaml:"sentiment"`
	Session   SessionConfig       `yaml:"session"`
	Log       logger.Config       `yaml:"log"`
}

// Load reads the YAML config file and overlays environment variables.
// A missing file yields the defaults rather than an error.
func Load(path string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML: %v", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading config file: %v", err)
	}

	config.applyDefaults()
	config.applyEnv()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Session.LogsDir == "" {
		c.Session.LogsDir = "logs"
	}
	if c.Session.ArchiveDir == "" {
		c.Session.ArchiveDir = "data/history"
	}
	if c.Sentiment.Model == "" {
		c.Sentiment.Model = "openai/gpt-3.5-turbo"
	}
	if c.Sentiment.BaseURL == "" {
		c.Sentiment.BaseURL = "https://openrouter.ai/api/v1"
	}
	if c.Sentiment.Temperature == 0 {
		c.Sentiment.Temperature = 0.1
	}
}

// applyEnv overlays secrets and endpoints that must not live in the file.
func (c *Config) applyEnv() {
	if key := os.Getenv("OPENROUTER_API_KEY"); key != "" {
		c.Sentiment.APIKey = key
	}
	if url := os.Getenv("REDIS_URL"); url != "" {
		c.Session.RedisURL = url
	}
}
