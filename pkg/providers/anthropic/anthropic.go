// Package anthropic implements the built-in provider for Anthropic's Claude
// models, using the official anthropic-sdk-go client.
package anthropic

import (
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/cecil-the-coder/llm-registry/internal/httpclient"
	"github.com/cecil-the-coder/llm-registry/pkg/provider"
)

const providerName = "anthropic"

// Provider adapts the uniform configuration to the Anthropic SDK client.
type Provider struct{}

// New creates the Anthropic provider. Construction is side-effect-free.
func New() *Provider {
	return &Provider{}
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return providerName
}

// CreateLLM builds an Anthropic SDK client for the configured model.
func (p *Provider) CreateLLM(cfg provider.Config) (*provider.ClientHandle, error) {
	if err := p.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(httpclient.New(httpclient.Config{})),
	}
	if baseURL := cfg.StringOption("base_url"); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client := anthropic.NewClient(opts...)
	return provider.NewClientHandle(providerName, cfg, client), nil
}

// RequiredEnvVars returns the credential variables Anthropic needs.
func (p *Provider) RequiredEnvVars() []string {
	return []string{"ANTHROPIC_API_KEY"}
}

// ValidateConfig checks the configuration without side effects.
func (p *Provider) ValidateConfig(cfg provider.Config) error {
	if cfg.Model == "" {
		return provider.NewConfigError(providerName, "model", "model is required for Anthropic provider")
	}
	if cfg.APIKey == "" {
		return provider.NewCredentialError(providerName, "ANTHROPIC_API_KEY")
	}
	return nil
}

// DisplayName returns the human-readable provider name.
func (p *Provider) DisplayName() string {
	return "Anthropic (Claude)"
}

// DefaultModel returns the default model identifier.
func (p *Provider) DefaultModel() string {
	return "claude-sonnet-4-5-20250929"
}

// AvailableModels returns the commonly used Claude models.
func (p *Provider) AvailableModels() []string {
	return []string{
		"claude-sonnet-4-5-20250929",
		"claude-3-5-sonnet-20241022",
		"claude-3-5-haiku-20241022",
		"claude-3-opus-20240229",
	}
}
