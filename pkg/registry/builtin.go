package registry

import (
	"github.com/cecil-the-coder/llm-registry/pkg/provider"
	"github.com/cecil-the-coder/llm-registry/pkg/providers/anthropic"
	"github.com/cecil-the-coder/llm-registry/pkg/providers/cerebras"
	"github.com/cecil-the-coder/llm-registry/pkg/providers/google"
	"github.com/cecil-the-coder/llm-registry/pkg/providers/ollama"
	"github.com/cecil-the-coder/llm-registry/pkg/providers/openai"
)

// registerBuiltins registers the fixed built-in provider set in order. Each
// provider is registered under its self-reported name.
func (r *Registry) registerBuiltins() {
	builtins := []Factory{
		func() provider.Provider { return ollama.New() },
		func() provider.Provider { return openai.New() },
		func() provider.Provider { return anthropic.New() },
		func() provider.Provider { return google.New() },
		func() provider.Provider { return cerebras.New() },
	}

	for _, factory := range builtins {
		r.Register(factory, sourceBuiltin)
	}
}
