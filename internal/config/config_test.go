package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"port": 9000,
		"provider": "openai",
		"openai_api_key": "sk-test",
		"draft_timeout_seconds": 30,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "sk-test", cfg.APIKey())
	assert.Equal(t, 30*time.Second, cfg.DraftTimeout())
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("CHROME_PATH", "/usr/bin/chromium")
	t.Setenv("EXPORT_TIMEOUT_SECONDS", "not-a-number")

	cfg := FromEnv()
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "g-key", cfg.APIKey())
	assert.Equal(t, "/usr/bin/chromium", cfg.ChromePath)
	assert.Zero(t, cfg.ExportTimeoutSeconds)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"defaults", Defaults(), ""},
		{"bad port", Config{Port: 70000}, "'port'"},
		{"bad provider", Config{Provider: "anthropic"}, "unknown provider"},
		{"negative draft timeout", Config{DraftTimeoutSeconds: -1}, "draft_timeout_seconds"},
		{"negative export timeout", Config{ExportTimeoutSeconds: -5}, "export_timeout_seconds"},
		{"missing chrome", Config{ChromePath: "/nonexistent/chrome"}, "chrome binary not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{
		Provider: "openai",
		Port:     9000,
	}

	defaults := Config{
		Provider:            "gemini",
		Port:                8080,
		OpenAIAPIKey:        "sk-env",
		DraftTimeoutSeconds: 60,
	}

	result := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "openai", result.Provider, "should keep explicit value")
	assert.Equal(t, 9000, result.Port, "should keep explicit value")
	assert.Equal(t, "sk-env", result.OpenAIAPIKey, "should use default")
	assert.Equal(t, 60*time.Second, result.DraftTimeout(), "should use default")
}

func TestMergeWithDefaults_Chained(t *testing.T) {
	flags := &Config{Port: 9999}
	file := Config{Provider: "openai"}
	env := Config{OpenAIAPIKey: "sk-env", Provider: "gemini"}

	merged := flags.MergeWithDefaults(file)
	merged = merged.MergeWithDefaults(env)
	merged = merged.MergeWithDefaults(Defaults())

	assert.Equal(t, 9999, merged.Port)
	assert.Equal(t, "openai", merged.Provider)
	assert.Equal(t, "sk-env", merged.APIKey())
	assert.Equal(t, 60*time.Second, merged.ExportTimeout())
}
