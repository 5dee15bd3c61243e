package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.Groq.BaseURL)
	assert.Equal(t, "llama3-8b-8192", cfg.Groq.Model)
	assert.Equal(t, "https://api.tavily.com", cfg.Tavily.BaseURL)
	assert.Equal(t, "advanced", cfg.Tavily.SearchDepth)
	assert.Equal(t, "tmp/workflows.db", cfg.Storage.DBFile)
	assert.Equal(t, "report_workflows", cfg.Storage.Table)
	assert.Equal(t, 3, cfg.Workflow.MaxSearchAttempts)
	assert.True(t, cfg.Workflow.UseCache)
	assert.Equal(t, ":8080", cfg.Server.Address)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("TAVILY_API_KEY", "tvly-test")

	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Storage.DBFile = filepath.Join(dir, "workflows.db")
	cfg.applyEnv()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "gsk-test", cfg.Groq.APIKey)
	assert.Equal(t, "tvly-test", cfg.Tavily.APIKey)
}

func TestValidateMissingKeys(t *testing.T) {
	cfg := DefaultConfig()

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GROQ_API_KEY")

	cfg.Groq.APIKey = "gsk-test"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TAVILY_API_KEY")
}

func TestValidateRejectsBadValues(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Groq.APIKey = "gsk-test"
	cfg.Tavily.APIKey = "tvly-test"
	cfg.Storage.DBFile = filepath.Join(dir, "workflows.db")
	cfg.Tavily.SearchDepth = "exhaustive"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SearchDepth")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("does-not-exist.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("TAVILY_API_KEY", "tvly-test")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := DefaultConfig()
	cfg.Groq.Model = "llama3-70b-8192"
	cfg.Storage.DBFile = filepath.Join(dir, "workflows.db")
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "llama3-70b-8192", loaded.Groq.Model)
	assert.Equal(t, "gsk-test", loaded.Groq.APIKey)
}

func TestStringMasksSecrets(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Groq.APIKey = "gsk-secret-value"
	cfg.Tavily.APIKey = "tvly-secret-value"

	s := cfg.String()
	assert.NotContains(t, s, "gsk-secret-value")
	assert.NotContains(t, s, "tvly-secret-value")
	assert.True(t, strings.Contains(s, "********"))
}
