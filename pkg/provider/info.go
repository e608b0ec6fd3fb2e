package provider

// Info is a read-only description of a registered provider, combining its
// identifier with the optional capabilities it declares.
type Info struct {
	Name              string   `json:"name" yaml:"name"`
	DisplayName       string   `json:"display_name" yaml:"display_name"`
	RequiredEnvVars   []string `json:"required_env_vars" yaml:"required_env_vars"`
	DefaultModel      string   `json:"default_model,omitempty" yaml:"default_model,omitempty"`
	AvailableModels   []string `json:"available_models,omitempty" yaml:"available_models,omitempty"`
	SupportsStreaming bool     `json:"supports_streaming" yaml:"supports_streaming"`
}

// Describe projects a provider into its Info record. Providers are stateless
// and cheap to query, so the result is recomputed on each call.
func Describe(p Provider) Info {
	return Info{
		Name:              p.Name(),
		DisplayName:       DisplayNameOf(p),
		RequiredEnvVars:   p.RequiredEnvVars(),
		DefaultModel:      DefaultModelOf(p),
		AvailableModels:   AvailableModelsOf(p),
		SupportsStreaming: StreamingSupported(p),
	}
}
