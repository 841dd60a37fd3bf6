package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "logs", cfg.Session.LogsDir)
	assert.Equal(t, "data/history", cfg.Session.ArchiveDir)
	assert.Equal(t, "openai/gpt-3.5-turbo", cfg.Sentiment.Model)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.Sentiment.BaseURL)
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
analyzer:
  top_words: 8
  summary_sentences: 2
sentiment:
  provider: ollama
  model: llama3
  base_url: http://localhost:11434
session:
  logs_dir: registros
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Analyzer.TopWords)
	assert.Equal(t, 2, cfg.Analyzer.SummarySentences)
	assert.Equal(t, "ollama", cfg.Sentiment.Provider)
	assert.Equal(t, "llama3", cfg.Sentiment.Model)
	assert.Equal(t, "registros", cfg.Session.LogsDir)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sentiment: [not a map"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadEnvOverlay(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "sk-test")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load(filepath.Join(t.TempDir(), "no-such.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.Sentiment.APIKey)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Session.RedisURL)
}
