// Package cerebras implements the built-in provider for Cerebras inference.
// Cerebras exposes an OpenAI-compatible API, so the adapter reuses the
// go-openai client pointed at the Cerebras endpoint.
package cerebras

import (
	openai "github.com/sashabaranov/go-openai"

	"github.com/cecil-the-coder/llm-registry/internal/httpclient"
	"github.com/cecil-the-coder/llm-registry/pkg/provider"
)

const (
	providerName   = "cerebras"
	defaultBaseURL = "https://api.cerebras.ai/v1"
)

// Provider adapts the uniform configuration to the Cerebras endpoint.
type Provider struct{}

// New creates the Cerebras provider. Construction is side-effect-free.
func New() *Provider {
	return &Provider{}
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return providerName
}

// CreateLLM builds an OpenAI-compatible client against the Cerebras API.
func (p *Provider) CreateLLM(cfg provider.Config) (*provider.ClientHandle, error) {
	if err := p.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.HTTPClient = httpclient.New(httpclient.Config{})
	clientConfig.BaseURL = defaultBaseURL
	if baseURL := cfg.StringOption("base_url"); baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	client := openai.NewClientWithConfig(clientConfig)
	return provider.NewClientHandle(providerName, cfg, client), nil
}

// RequiredEnvVars returns the credential variables Cerebras needs.
func (p *Provider) RequiredEnvVars() []string {
	return []string{"CEREBRAS_API_KEY"}
}

// ValidateConfig checks the configuration without side effects.
func (p *Provider) ValidateConfig(cfg provider.Config) error {
	if cfg.Model == "" {
		return provider.NewConfigError(providerName, "model", "model is required for Cerebras provider")
	}
	if cfg.APIKey == "" {
		return provider.NewCredentialError(providerName, "CEREBRAS_API_KEY")
	}
	return nil
}

// DisplayName returns the human-readable provider name.
func (p *Provider) DisplayName() string {
	return "Cerebras"
}

// DefaultModel returns the default model identifier.
func (p *Provider) DefaultModel() string {
	return "llama3.1-70b"
}

// AvailableModels returns the commonly used Cerebras models.
func (p *Provider) AvailableModels() []string {
	return []string{
		"llama3.1-70b",
		"llama3.1-8b",
	}
}
