// Package openai implements the built-in provider for OpenAI's GPT models.
package openai

import (
	openai "github.com/sashabaranov/go-openai"

	"github.com/cecil-the-coder/llm-registry/internal/httpclient"
	"github.com/cecil-the-coder/llm-registry/pkg/provider"
)

const providerName = "openai"

// Provider adapts the uniform configuration to the go-openai client.
type Provider struct{}

// New creates the OpenAI provider. Construction is side-effect-free.
func New() *Provider {
	return &Provider{}
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return providerName
}

// CreateLLM builds a go-openai client for the configured model.
func (p *Provider) CreateLLM(cfg provider.Config) (*provider.ClientHandle, error) {
	if err := p.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.HTTPClient = httpclient.New(httpclient.Config{})
	if baseURL := cfg.StringOption("base_url"); baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	client := openai.NewClientWithConfig(clientConfig)
	return provider.NewClientHandle(providerName, cfg, client), nil
}

// RequiredEnvVars returns the credential variables OpenAI needs.
func (p *Provider) RequiredEnvVars() []string {
	return []string{"OPENAI_API_KEY"}
}

// ValidateConfig checks the configuration without side effects.
func (p *Provider) ValidateConfig(cfg provider.Config) error {
	if cfg.Model == "" {
		return provider.NewConfigError(providerName, "model", "model is required for OpenAI provider")
	}
	if cfg.APIKey == "" {
		return provider.NewCredentialError(providerName, "OPENAI_API_KEY")
	}
	return nil
}

// DisplayName returns the human-readable provider name.
func (p *Provider) DisplayName() string {
	return "OpenAI"
}

// DefaultModel returns the default model identifier.
func (p *Provider) DefaultModel() string {
	return "gpt-4o"
}

// AvailableModels returns the commonly used OpenAI models.
func (p *Provider) AvailableModels() []string {
	return []string{
		"gpt-4o",
		"gpt-4o-mini",
		"gpt-4-turbo",
		"gpt-3.5-turbo",
	}
}
