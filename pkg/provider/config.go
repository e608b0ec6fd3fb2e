package provider

// Config is the uniform configuration passed to every provider. Provider
// specific settings travel in Options; the typed accessors below tolerate
// the loose value types that show up after YAML or JSON decoding.
type Config struct {
	// Model is the model identifier to use (e.g., "gpt-4o").
	Model string

	// Temperature controls response randomness (0.0-1.0).
	Temperature float32

	// APIKey authenticates against the backend, when the provider
	// requires one. Empty for local providers such as Ollama.
	APIKey string

	// Options carries additional provider-specific settings
	// (e.g., "base_url", "requests_per_minute").
	Options map[string]any
}

// StringOption returns the named option as a string, or "" when absent or
// not a string.
func (c Config) StringOption(key string) string {
	if val, ok := c.Options[key].(string); ok {
		return val
	}
	return ""
}

// BoolOption returns the named option as a bool, or false when absent or
// not a bool.
func (c Config) BoolOption(key string) bool {
	if val, ok := c.Options[key].(bool); ok {
		return val
	}
	return false
}

// IntOption returns the named option as an int, accepting int, int64 and
// float64 representations. Returns 0 when absent or non-numeric.
func (c Config) IntOption(key string) int {
	switch val := c.Options[key].(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	}
	return 0
}

// FloatOption returns the named option as a float64, accepting float64,
// int and int64 representations. Returns 0 when absent or non-numeric.
func (c Config) FloatOption(key string) float64 {
	switch val := c.Options[key].(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case int64:
		return float64(val)
	}
	return 0
}
