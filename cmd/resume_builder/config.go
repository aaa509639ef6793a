package main

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/llm"
)

// resolveConfig merges flags over the config file, the environment and the
// built-in defaults, in that order.
func resolveConfig(flags config.Config) (config.Config, error) {
	cfg := flags
	if configFile != "" {
		fileCfg, err := config.LoadConfig(configFile)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	env := config.FromEnv()
	cfg = cfg.MergeWithDefaults(env)
	cfg = cfg.MergeWithDefaults(config.Defaults())
	cfg.Verbose = cfg.Verbose || verbose

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLLMClient builds the draft assistant's client. It returns nil without
// an error when no API key is configured for the provider.
func newLLMClient(ctx context.Context, cfg config.Config) (llm.Client, error) {
	apiKey := cfg.APIKey()
	if apiKey == "" {
		return nil, nil
	}
	llmCfg, err := llm.ConfigFor(cfg.Provider)
	if err != nil {
		return nil, err
	}
	if cfg.Model != "" {
		llmCfg = llmCfg.WithModel(llm.TierStandard, cfg.Model)
	}
	if cfg.OpenAIBaseURL != "" {
		llmCfg.BaseURL = cfg.OpenAIBaseURL
	}
	client, err := llm.NewClient(ctx, llmCfg, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return client, nil
}
