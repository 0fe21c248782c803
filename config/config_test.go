package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `
server:
  anonKey: test-anon-key
openrouter:
  apiKey: sk-test
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, "test-anon-key", cfg.Server.AnonKey)
	assert.Equal(t, "openrouter", cfg.Provider)
	assert.Equal(t, "https://openrouter.ai/api/v1/chat/completions", cfg.OpenRouter.URL)
	assert.Equal(t, "openai/gpt-4-turbo-preview", cfg.OpenRouter.Model)
	assert.Equal(t, "IdeaNest", cfg.OpenRouter.Title)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}
