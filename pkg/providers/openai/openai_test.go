package openai

import (
	"testing"

	goopenai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cecil-the-coder/llm-registry/pkg/provider"
)

var _ provider.Provider = (*Provider)(nil)

// TestProviderIdentity verifies the identifier and descriptive defaults.
func TestProviderIdentity(t *testing.T) {
	p := New()

	assert.Equal(t, "openai", p.Name())
	assert.Equal(t, "OpenAI", provider.DisplayNameOf(p))
	assert.Equal(t, []string{"OPENAI_API_KEY"}, p.RequiredEnvVars())
	assert.Equal(t, "gpt-4o", provider.DefaultModelOf(p))
	assert.Contains(t, provider.AvailableModelsOf(p), "gpt-4o-mini")
	assert.True(t, provider.StreamingSupported(p))
}

// TestValidateConfig verifies pure validation with field-specific errors.
func TestValidateConfig(t *testing.T) {
	p := New()

	t.Run("empty config names the missing model", func(t *testing.T) {
		err := p.ValidateConfig(provider.Config{})
		require.Error(t, err)
		assert.True(t, provider.IsConfigError(err))
		assert.Contains(t, err.Error(), "model is required")
	})

	t.Run("missing api key names the env var", func(t *testing.T) {
		err := p.ValidateConfig(provider.Config{Model: "gpt-4o"})
		require.Error(t, err)
		assert.True(t, provider.IsCredentialError(err))
		assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	})

	t.Run("complete config is valid", func(t *testing.T) {
		err := p.ValidateConfig(provider.Config{Model: "gpt-4o", APIKey: "sk-test"})
		assert.NoError(t, err)
	})
}

// TestCreateLLM verifies client construction and error propagation.
func TestCreateLLM(t *testing.T) {
	p := New()

	t.Run("returns a go-openai client handle", func(t *testing.T) {
		h, err := p.CreateLLM(provider.Config{
			Model:       "gpt-4o",
			Temperature: 0.2,
			APIKey:      "sk-test",
		})
		require.NoError(t, err)
		require.NotNil(t, h)

		assert.Equal(t, "openai", h.Provider)
		assert.Equal(t, "gpt-4o", h.Model)
		assert.NotEmpty(t, h.InstanceID)
		assert.IsType(t, &goopenai.Client{}, h.Client)
	})

	t.Run("honors base_url and rate limit options", func(t *testing.T) {
		h, err := p.CreateLLM(provider.Config{
			Model:  "gpt-4o",
			APIKey: "sk-test",
			Options: map[string]any{
				"base_url":            "https://proxy.internal/v1",
				"requests_per_minute": 60,
			},
		})
		require.NoError(t, err)
		assert.NotNil(t, h.Limiter)
	})

	t.Run("fails loudly without credentials", func(t *testing.T) {
		h, err := p.CreateLLM(provider.Config{Model: "gpt-4o"})
		assert.Nil(t, h)
		assert.True(t, provider.IsCredentialError(err))
	})
}
