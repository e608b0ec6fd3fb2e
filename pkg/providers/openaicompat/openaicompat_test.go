package openaicompat

import (
	"testing"

	goopenai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cecil-the-coder/llm-registry/pkg/provider"
)

var _ provider.Provider = (*Provider)(nil)

func boolPtr(b bool) *bool { return &b }

func validSettings() Settings {
	return Settings{
		Name:         "vendorx",
		DisplayName:  "VendorX",
		BaseURL:      "https://api.vendorx.example/v1",
		APIKeyEnv:    "VENDORX_API_KEY",
		DefaultModel: "vx-large",
		Models:       []string{"vx-large", "vx-small"},
	}
}

// TestNew verifies settings validation for manifest entries.
func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Settings)
		wantErr  string
		wantName string
	}{
		{
			name:     "valid entry",
			mutate:   func(s *Settings) {},
			wantName: "vendorx",
		},
		{
			name:     "name is normalized to lowercase",
			mutate:   func(s *Settings) { s.Name = "  VendorX  " },
			wantName: "vendorx",
		},
		{
			name:     "explicit openai api kind",
			mutate:   func(s *Settings) { s.API = APIKindOpenAI },
			wantName: "vendorx",
		},
		{
			name:    "missing name",
			mutate:  func(s *Settings) { s.Name = "" },
			wantErr: "missing a name",
		},
		{
			name:    "missing base_url",
			mutate:  func(s *Settings) { s.BaseURL = "" },
			wantErr: "missing base_url",
		},
		{
			name:    "unsupported api kind",
			mutate:  func(s *Settings) { s.API = "grpc" },
			wantErr: "unsupported api kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			tt.mutate(&s)

			p, err := New(s)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, p.Name())
		})
	}
}

// TestDescriptiveCapabilities verifies display name, models and streaming.
func TestDescriptiveCapabilities(t *testing.T) {
	t.Run("declared values", func(t *testing.T) {
		s := validSettings()
		s.SupportsStreaming = boolPtr(false)
		p, err := New(s)
		require.NoError(t, err)

		assert.Equal(t, "VendorX", provider.DisplayNameOf(p))
		assert.Equal(t, "vx-large", provider.DefaultModelOf(p))
		assert.Equal(t, []string{"vx-large", "vx-small"}, provider.AvailableModelsOf(p))
		assert.False(t, provider.StreamingSupported(p))
		assert.Equal(t, []string{"VENDORX_API_KEY"}, p.RequiredEnvVars())
	})

	t.Run("defaults", func(t *testing.T) {
		p, err := New(Settings{Name: "vendorx", BaseURL: "https://api.vendorx.example/v1"})
		require.NoError(t, err)

		assert.Equal(t, "Vendorx", provider.DisplayNameOf(p))
		assert.True(t, provider.StreamingSupported(p))
		assert.Empty(t, provider.DefaultModelOf(p))
		assert.Nil(t, p.RequiredEnvVars())
	})
}

// TestValidateConfig verifies credential and model requirements.
func TestValidateConfig(t *testing.T) {
	p, err := New(validSettings())
	require.NoError(t, err)

	t.Run("default model satisfies the model requirement", func(t *testing.T) {
		err := p.ValidateConfig(provider.Config{APIKey: "vx-test"})
		assert.NoError(t, err)
	})

	t.Run("missing api key names the declared env var", func(t *testing.T) {
		err := p.ValidateConfig(provider.Config{Model: "vx-small"})
		require.Error(t, err)
		assert.True(t, provider.IsCredentialError(err))
		assert.Contains(t, err.Error(), "VENDORX_API_KEY")
	})

	t.Run("oauth token satisfies the credential requirement", func(t *testing.T) {
		err := p.ValidateConfig(provider.Config{
			Model:   "vx-small",
			Options: map[string]any{"oauth_token": "ya29.test"},
		})
		assert.NoError(t, err)
	})

	t.Run("no model anywhere is invalid", func(t *testing.T) {
		noDefault, err := New(Settings{Name: "bare", BaseURL: "https://api.bare.example/v1"})
		require.NoError(t, err)

		verr := noDefault.ValidateConfig(provider.Config{})
		require.Error(t, verr)
		assert.True(t, provider.IsConfigError(verr))
		assert.Contains(t, verr.Error(), "model is required")
	})
}

// TestCreateLLM verifies client construction, model fallback, and the OAuth
// transport path.
func TestCreateLLM(t *testing.T) {
	p, err := New(validSettings())
	require.NoError(t, err)

	t.Run("api key auth", func(t *testing.T) {
		h, err := p.CreateLLM(provider.Config{Model: "vx-small", APIKey: "vx-test"})
		require.NoError(t, err)
		require.NotNil(t, h)

		assert.Equal(t, "vendorx", h.Provider)
		assert.Equal(t, "vx-small", h.Model)
		assert.IsType(t, &goopenai.Client{}, h.Client)
	})

	t.Run("falls back to the declared default model", func(t *testing.T) {
		h, err := p.CreateLLM(provider.Config{APIKey: "vx-test"})
		require.NoError(t, err)
		assert.Equal(t, "vx-large", h.Model)
	})

	t.Run("oauth token auth", func(t *testing.T) {
		h, err := p.CreateLLM(provider.Config{
			Model:   "vx-small",
			Options: map[string]any{"oauth_token": "ya29.test"},
		})
		require.NoError(t, err)
		assert.IsType(t, &goopenai.Client{}, h.Client)
	})

	t.Run("missing credentials fail loudly", func(t *testing.T) {
		h, err := p.CreateLLM(provider.Config{Model: "vx-small"})
		assert.Nil(t, h)
		assert.True(t, provider.IsCredentialError(err))
	})
}
