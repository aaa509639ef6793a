// Package llm provides centralized LLM configuration and client abstractions.
// Providers share one Client interface so the draft assistant never depends on
// a specific SDK.
package llm

import "fmt"

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for short, low-stakes text
	TierLite ModelTier = "lite"
	// TierStandard is for drafting prose; the default for résumé drafts
	TierStandard ModelTier = "standard"
	// TierAdvanced is for longer, more careful writing
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI chat completions provider
	ProviderOpenAI Provider = "openai"
)

// DefaultTemperature is used when a config leaves Temperature unset.
const DefaultTemperature float32 = 0.7

// Config holds the model configuration for the application
type Config struct {
	Provider    Provider
	Models      map[ModelTier]string
	Temperature float32
	// BaseURL overrides the provider endpoint. Only honoured by OpenAI.
	BaseURL string
}

// DefaultConfig returns the default configuration (Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperature: DefaultTemperature,
	}
}

// DefaultOpenAIConfig returns the default OpenAI configuration
func DefaultOpenAIConfig() *Config {
	return &Config{
		Provider: ProviderOpenAI,
		Models: map[ModelTier]string{
			TierLite:     "gpt-4o-mini",
			TierStandard: "gpt-4o-mini",
			TierAdvanced: "gpt-4o",
		},
		Temperature: DefaultTemperature,
	}
}

// ConfigFor returns the default configuration of a provider by name.
func ConfigFor(provider string) (*Config, error) {
	switch Provider(provider) {
	case "", ProviderGemini:
		return DefaultGeminiConfig(), nil
	case ProviderOpenAI:
		return DefaultOpenAIConfig(), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q", provider)
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return "" // No model configured
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Provider:    c.Provider,
		Models:      make(map[ModelTier]string),
		Temperature: c.Temperature,
		BaseURL:     c.BaseURL,
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}

func (c *Config) temperature() float32 {
	if c.Temperature <= 0 {
		return DefaultTemperature
	}
	return c.Temperature
}
