// Package provider defines the contract every LLM provider adapter must
// satisfy, the uniform configuration handed to adapters, and the descriptive
// projection the registry exposes for introspection.
package provider

import "unicode"

// Provider is the capability set required from every provider variant.
// Implementations must be stateless and side-effect-free to construct:
// no credentials, no network access. Only CreateLLM may fail because of
// missing credentials or an unavailable backend.
type Provider interface {
	// Name returns the stable lowercase identifier for this provider
	// (e.g., "ollama", "openai"). The registry uses this value as the
	// authoritative mapping key.
	Name() string

	// CreateLLM constructs and returns a client handle wrapping the
	// vendor SDK client, ready for use by the embedding agent system.
	// It returns an *Error with ErrCodeInvalidConfig if the configuration
	// is invalid, ErrCodeMissingCredential if a required credential is
	// absent, or ErrCodeMissingDependency if the backend is unavailable.
	CreateLLM(cfg Config) (*ClientHandle, error)

	// RequiredEnvVars returns the names of the credential environment
	// variables this provider needs, in declaration order. Sourcing the
	// values is the embedding system's responsibility.
	RequiredEnvVars() []string

	// ValidateConfig performs pure validation of the configuration with
	// no side effects and no network calls. It returns nil when valid,
	// otherwise an *Error naming the specific missing or invalid field.
	ValidateConfig(cfg Config) error
}

// Optional capabilities. Concrete providers implement these interfaces only
// when they need to override the defaults; callers go through the free
// functions below.

// DisplayNamer overrides the human-readable display name.
type DisplayNamer interface {
	DisplayName() string
}

// StreamingSupporter overrides the streaming-support flag.
type StreamingSupporter interface {
	SupportsStreaming() bool
}

// DefaultModeler overrides the default model identifier.
type DefaultModeler interface {
	DefaultModel() string
}

// ModelLister overrides the list of available model identifiers.
type ModelLister interface {
	AvailableModels() []string
}

// DisplayNameOf returns the provider's display name, defaulting to the
// capitalized identifier.
func DisplayNameOf(p Provider) string {
	if d, ok := p.(DisplayNamer); ok {
		return d.DisplayName()
	}
	return capitalize(p.Name())
}

// StreamingSupported reports whether the provider supports streaming
// responses. Defaults to true; most modern providers stream.
func StreamingSupported(p Provider) bool {
	if s, ok := p.(StreamingSupporter); ok {
		return s.SupportsStreaming()
	}
	return true
}

// DefaultModelOf returns the provider's default model identifier, or the
// empty string when the provider declares none.
func DefaultModelOf(p Provider) string {
	if d, ok := p.(DefaultModeler); ok {
		return d.DefaultModel()
	}
	return ""
}

// AvailableModelsOf returns the provider's known model identifiers, or nil
// when the provider does not enumerate models.
func AvailableModelsOf(p Provider) []string {
	if m, ok := p.(ModelLister); ok {
		return m.AvailableModels()
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
