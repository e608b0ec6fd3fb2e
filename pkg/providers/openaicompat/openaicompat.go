// Package openaicompat provides a generic provider for OpenAI-compatible
// endpoints. The registry's discovery loader instantiates one of these for
// every provider entry declared in a plugin manifest, so new vendors can be
// added without writing Go code.
package openaicompat

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/oauth2"

	"github.com/cecil-the-coder/llm-registry/internal/httpclient"
	"github.com/cecil-the-coder/llm-registry/pkg/provider"
)

// APIKindOpenAI is the only wire protocol the generic provider speaks.
const APIKindOpenAI = "openai"

// Settings declares a custom provider. This is the schema of a single entry
// in a plugin manifest file.
type Settings struct {
	// Name is the unique lowercase identifier to register under.
	Name string `yaml:"name"`

	// DisplayName is the optional human-readable name.
	DisplayName string `yaml:"display_name"`

	// API selects the wire protocol. Empty or "openai".
	API string `yaml:"api"`

	// BaseURL is the endpoint of the OpenAI-compatible API.
	BaseURL string `yaml:"base_url"`

	// APIKeyEnv names the environment variable holding the API key.
	// Empty means the endpoint needs no key (e.g., a local gateway).
	APIKeyEnv string `yaml:"api_key_env"`

	// DefaultModel is the optional default model identifier.
	DefaultModel string `yaml:"default_model"`

	// Models lists the available model identifiers.
	Models []string `yaml:"models"`

	// SupportsStreaming overrides the streaming flag. Defaults to true.
	SupportsStreaming *bool `yaml:"supports_streaming"`
}

// Provider is a stateless OpenAI-compatible provider built from Settings.
type Provider struct {
	settings Settings
}

// New validates the settings and builds the provider. It fails when the
// entry is not a concrete, instantiable provider declaration.
func New(s Settings) (*Provider, error) {
	s.Name = strings.ToLower(strings.TrimSpace(s.Name))
	if s.Name == "" {
		return nil, fmt.Errorf("provider entry is missing a name")
	}
	if s.API != "" && s.API != APIKindOpenAI {
		return nil, fmt.Errorf("provider %q declares unsupported api kind %q", s.Name, s.API)
	}
	if s.BaseURL == "" {
		return nil, fmt.Errorf("provider %q is missing base_url", s.Name)
	}
	return &Provider{settings: s}, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return p.settings.Name
}

// CreateLLM builds a go-openai client against the declared endpoint.
// Authentication uses the API key, or an OAuth bearer token supplied via
// Options["oauth_token"] for gateways fronted by an identity provider.
func (p *Provider) CreateLLM(cfg provider.Config) (*provider.ClientHandle, error) {
	if err := p.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	model := cfg.Model
	if model == "" {
		model = p.settings.DefaultModel
	}
	cfg.Model = model

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = p.settings.BaseURL
	clientConfig.HTTPClient = httpclient.New(httpclient.Config{})
	if token := cfg.StringOption("oauth_token"); token != "" {
		source := oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: token,
			TokenType:   "Bearer",
		})
		// Stack the bearer-token transport on top of the retrying client.
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, clientConfig.HTTPClient)
		clientConfig.HTTPClient = oauth2.NewClient(ctx, source)
	}

	client := openai.NewClientWithConfig(clientConfig)
	return provider.NewClientHandle(p.settings.Name, cfg, client), nil
}

// RequiredEnvVars returns the declared credential variable, if any.
func (p *Provider) RequiredEnvVars() []string {
	if p.settings.APIKeyEnv == "" {
		return nil
	}
	return []string{p.settings.APIKeyEnv}
}

// ValidateConfig checks the configuration without side effects. Either an
// API key or an OAuth token satisfies the credential requirement.
func (p *Provider) ValidateConfig(cfg provider.Config) error {
	if cfg.Model == "" && p.settings.DefaultModel == "" {
		return provider.NewConfigError(p.settings.Name, "model",
			fmt.Sprintf("model is required for %s provider", p.settings.Name))
	}
	if p.settings.APIKeyEnv != "" && cfg.APIKey == "" && cfg.StringOption("oauth_token") == "" {
		return provider.NewCredentialError(p.settings.Name, p.settings.APIKeyEnv)
	}
	return nil
}

// DisplayName returns the declared display name, when set.
func (p *Provider) DisplayName() string {
	if p.settings.DisplayName != "" {
		return p.settings.DisplayName
	}
	return strings.ToUpper(p.settings.Name[:1]) + p.settings.Name[1:]
}

// SupportsStreaming reports the declared streaming flag, defaulting to true.
func (p *Provider) SupportsStreaming() bool {
	if p.settings.SupportsStreaming == nil {
		return true
	}
	return *p.settings.SupportsStreaming
}

// DefaultModel returns the declared default model.
func (p *Provider) DefaultModel() string {
	return p.settings.DefaultModel
}

// AvailableModels returns the declared model list.
func (p *Provider) AvailableModels() []string {
	return p.settings.Models
}
