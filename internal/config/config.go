// Package config provides configuration loading and validation for the service and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Default values applied by MergeWithDefaults(Defaults()).
const (
	DefaultPort                 = 8080
	DefaultProvider             = "gemini"
	DefaultDraftTimeoutSeconds  = 60
	DefaultExportTimeoutSeconds = 60
)

// Config represents the service configuration that can be loaded from a JSON file.
// All fields are optional; missing values come from the environment, CLI flags or defaults.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Draft assistant
	Provider      string `json:"provider,omitempty"`        // LLM provider: gemini or openai
	Model         string `json:"model,omitempty"`           // Overrides the standard-tier model
	GeminiAPIKey  string `json:"gemini_api_key,omitempty"`  // Gemini API key
	OpenAIAPIKey  string `json:"openai_api_key,omitempty"`  // OpenAI API key
	OpenAIBaseURL string `json:"openai_base_url,omitempty"` // OpenAI-compatible endpoint

	// Export
	ChromePath string `json:"chrome_path,omitempty"` // Chrome/Chromium binary for PDF export

	// Timeouts
	DraftTimeoutSeconds  int `json:"draft_timeout_seconds,omitempty"`  // Bound on one draft generation
	ExportTimeoutSeconds int `json:"export_timeout_seconds,omitempty"` // Bound on one PDF export

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:                 DefaultPort,
		Provider:             DefaultProvider,
		DraftTimeoutSeconds:  DefaultDraftTimeoutSeconds,
		ExportTimeoutSeconds: DefaultExportTimeoutSeconds,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads the configuration keys present in the environment.
// Unset or unparseable numeric variables are left zero.
func FromEnv() Config {
	return Config{
		Port:                 envInt("PORT"),
		Provider:             os.Getenv("LLM_PROVIDER"),
		Model:                os.Getenv("LLM_MODEL"),
		GeminiAPIKey:         os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:         os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:        os.Getenv("OPENAI_BASE_URL"),
		ChromePath:           os.Getenv("CHROME_PATH"),
		DraftTimeoutSeconds:  envInt("DRAFT_TIMEOUT_SECONDS"),
		ExportTimeoutSeconds: envInt("EXPORT_TIMEOUT_SECONDS"),
	}
}

func envInt(key string) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return 0
	}
	return v
}

// Validate checks that the configuration has valid values.
// Note: a missing API key is not an error; the draft assistant is disabled instead.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535, got %d", c.Port)
	}

	switch c.Provider {
	case "", "gemini", "openai":
	default:
		return fmt.Errorf("config error: unknown provider %q (want gemini or openai)", c.Provider)
	}

	if c.DraftTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'draft_timeout_seconds' must be non-negative")
	}
	if c.ExportTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'export_timeout_seconds' must be non-negative")
	}

	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.ChromePath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// Calls chain from the highest priority source down: flags, file, env, Defaults().
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.OpenAIAPIKey == "" {
		result.OpenAIAPIKey = defaults.OpenAIAPIKey
	}
	if result.OpenAIBaseURL == "" {
		result.OpenAIBaseURL = defaults.OpenAIBaseURL
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DraftTimeoutSeconds == 0 {
		result.DraftTimeoutSeconds = defaults.DraftTimeoutSeconds
	}
	if result.ExportTimeoutSeconds == 0 {
		result.ExportTimeoutSeconds = defaults.ExportTimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// APIKey returns the key for the configured provider.
func (c *Config) APIKey() string {
	if c.Provider == "openai" {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

// DraftTimeout returns the draft generation bound.
func (c *Config) DraftTimeout() time.Duration {
	return time.Duration(c.DraftTimeoutSeconds) * time.Second
}

// ExportTimeout returns the PDF export bound.
func (c *Config) ExportTimeout() time.Duration {
	return time.Duration(c.ExportTimeoutSeconds) * time.Second
}
