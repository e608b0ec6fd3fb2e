package ollama

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

	assert.Equal(t, "ollama", p.Name())
	assert.Equal(t, "Ollama (Local)", provider.DisplayNameOf(p))
	assert.Empty(t, p.RequiredEnvVars())
	assert.Equal(t, "qwen2.5-coder:7b", provider.DefaultModelOf(p))
	assert.Contains(t, provider.AvailableModelsOf(p), "llama3.2:latest")
	assert.True(t, provider.StreamingSupported(p))
}

// TestValidateConfig verifies that only the model is required: Ollama runs
// locally and needs no credentials.
func TestValidateConfig(t *testing.T) {
	p := New()

	t.Run("empty config names the missing model", func(t *testing.T) {
		err := p.ValidateConfig(provider.Config{})
		require.Error(t, err)
		assert.True(t, provider.IsConfigError(err))
		assert.Contains(t, err.Error(), "model is required")
	})

	t.Run("model alone is valid", func(t *testing.T) {
		err := p.ValidateConfig(provider.Config{Model: "qwen2.5-coder:7b"})
		assert.NoError(t, err)
	})
}

// TestCreateLLM verifies client construction against the local endpoint.
func TestCreateLLM(t *testing.T) {
	p := New()

	t.Run("no api key needed", func(t *testing.T) {
		h, err := p.CreateLLM(provider.Config{Model: "qwen2.5-coder:7b"})
		require.NoError(t, err)
		require.NotNil(t, h)

		assert.Equal(t, "ollama", h.Provider)
		assert.IsType(t, &goopenai.Client{}, h.Client)
	})

	t.Run("base_url override", func(t *testing.T) {
		h, err := p.CreateLLM(provider.Config{
			Model:   "mistral:latest",
			Options: map[string]any{"base_url": "http://ollama.lan:11434/v1"},
		})
		require.NoError(t, err)
		assert.NotNil(t, h)
	})

	t.Run("missing model fails validation", func(t *testing.T) {
		h, err := p.CreateLLM(provider.Config{})
		assert.Nil(t, h)
		assert.True(t, provider.IsConfigError(err))
	})
}
