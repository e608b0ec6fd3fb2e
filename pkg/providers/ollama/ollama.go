// Package ollama implements the built-in provider for the Ollama local LLM
// runtime, via its OpenAI-compatible endpoint. Ollama runs locally and
// requires no credentials.
package ollama

import (
	openai "github.com/sashabaranov/go-openai"

	"github.com/cecil-the-coder/llm-registry/internal/httpclient"
	"github.com/cecil-the-coder/llm-registry/pkg/provider"
)

const (
	providerName   = "ollama"
	defaultBaseURL = "http://localhost:11434/v1"

	// Ollama ignores the API key but the client requires a non-empty one.
	placeholderKey = "ollama"
)

// Provider adapts the uniform configuration to a local Ollama endpoint.
type Provider struct{}

// New creates the Ollama provider. Construction is side-effect-free.
func New() *Provider {
	return &Provider{}
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return providerName
}

// CreateLLM builds an OpenAI-compatible client against the local endpoint.
func (p *Provider) CreateLLM(cfg provider.Config) (*provider.ClientHandle, error) {
	if err := p.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	clientConfig := openai.DefaultConfig(placeholderKey)
	clientConfig.HTTPClient = httpclient.New(httpclient.Config{})
	clientConfig.BaseURL = defaultBaseURL
	if baseURL := cfg.StringOption("base_url"); baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	client := openai.NewClientWithConfig(clientConfig)
	return provider.NewClientHandle(providerName, cfg, client), nil
}

// RequiredEnvVars returns nil: Ollama needs no API keys.
func (p *Provider) RequiredEnvVars() []string {
	return nil
}

// ValidateConfig checks the configuration without side effects.
func (p *Provider) ValidateConfig(cfg provider.Config) error {
	if cfg.Model == "" {
		return provider.NewConfigError(providerName, "model", "model is required for Ollama provider")
	}
	return nil
}

// DisplayName returns the human-readable provider name.
func (p *Provider) DisplayName() string {
	return "Ollama (Local)"
}

// DefaultModel returns the default model identifier.
func (p *Provider) DefaultModel() string {
	return "qwen2.5-coder:7b"
}

// AvailableModels returns the commonly used Ollama models.
func (p *Provider) AvailableModels() []string {
	return []string{
		"qwen2.5-coder:7b",
		"qwen2.5:latest",
		"llama3.2:latest",
		"codellama:latest",
		"mistral:latest",
	}
}
