// Package google implements the built-in provider for Google's Gemini
// models, using the official google.golang.org/genai SDK.
package google

import (
	"context"

	"google.golang.org/genai"

	"github.com/cecil-the-coder/llm-registry/internal/httpclient"
	"github.com/cecil-the-coder/llm-registry/pkg/provider"
)

const providerName = "google"

// Provider adapts the uniform configuration to the Gemini SDK client.
type Provider struct{}

// New creates the Google provider. Construction is side-effect-free.
func New() *Provider {
	return &Provider{}
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return providerName
}

// CreateLLM builds a Gemini SDK client for the configured model.
func (p *Provider) CreateLLM(cfg provider.Config) (*provider.ClientHandle, error) {
	if err := p.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpclient.New(httpclient.Config{}),
	})
	if err != nil {
		return nil, &provider.Error{
			Provider: providerName,
			Code:     provider.ErrCodeMissingDependency,
			Message:  "failed to initialize Gemini client",
			Err:      err,
		}
	}

	return provider.NewClientHandle(providerName, cfg, client), nil
}

// RequiredEnvVars returns the credential variables Gemini needs.
func (p *Provider) RequiredEnvVars() []string {
	return []string{"GOOGLE_GEN_AI_API_KEY"}
}

// ValidateConfig checks the configuration without side effects.
func (p *Provider) ValidateConfig(cfg provider.Config) error {
	if cfg.Model == "" {
		return provider.NewConfigError(providerName, "model", "model is required for Google provider")
	}
	if cfg.APIKey == "" {
		return provider.NewCredentialError(providerName, "GOOGLE_GEN_AI_API_KEY")
	}
	return nil
}

// DisplayName returns the human-readable provider name.
func (p *Provider) DisplayName() string {
	return "Google Gemini"
}

// DefaultModel returns the default model identifier.
func (p *Provider) DefaultModel() string {
	return "gemini-2.0-flash-exp"
}

// AvailableModels returns the commonly used Gemini models.
func (p *Provider) AvailableModels() []string {
	return []string{
		"gemini-2.0-flash-exp",
		"gemini-2.5-flash",
		"gemini-1.5-pro",
		"gemini-1.5-flash",
	}
}
