// Package testutil provides shared testing utilities, mocks, and fixtures
// for use across the llm-registry test suite.
package testutil

import (
	"sync"

	"github.com/cecil-the-coder/llm-registry/pkg/provider"
)

// ConfigurableMockProvider is a mock Provider implementation with
// configurable behavior. It allows tests to simulate provider variants
// with arbitrary names, capabilities and failure modes.
type ConfigurableMockProvider struct {
	mu sync.RWMutex

	// Configuration
	name              string
	displayName       string
	envVars           []string
	defaultModel      string
	models            []string
	supportsStreaming bool

	// Behavior control
	validateError error
	createError   error

	// Call tracking
	createCalled   int
	validateCalled int
}

// NewMockProvider creates a mock provider with the given name and sensible
// defaults: streaming on, no credentials, no models.
func NewMockProvider(name string) *ConfigurableMockProvider {
	return &ConfigurableMockProvider{
		name:              name,
		supportsStreaming: true,
	}
}

// WithDisplayName sets the display name and returns the mock for chaining.
func (m *ConfigurableMockProvider) WithDisplayName(displayName string) *ConfigurableMockProvider {
	m.displayName = displayName
	return m
}

// WithEnvVars sets the required env vars and returns the mock for chaining.
func (m *ConfigurableMockProvider) WithEnvVars(envVars ...string) *ConfigurableMockProvider {
	m.envVars = envVars
	return m
}

// WithDefaultModel sets the default model and returns the mock for chaining.
func (m *ConfigurableMockProvider) WithDefaultModel(model string) *ConfigurableMockProvider {
	m.defaultModel = model
	return m
}

// WithModels sets the available models and returns the mock for chaining.
func (m *ConfigurableMockProvider) WithModels(models ...string) *ConfigurableMockProvider {
	m.models = models
	return m
}

// WithStreaming sets the streaming flag and returns the mock for chaining.
func (m *ConfigurableMockProvider) WithStreaming(supported bool) *ConfigurableMockProvider {
	m.supportsStreaming = supported
	return m
}

// WithValidateError makes ValidateConfig fail with err.
func (m *ConfigurableMockProvider) WithValidateError(err error) *ConfigurableMockProvider {
	m.validateError = err
	return m
}

// WithCreateError makes CreateLLM fail with err.
func (m *ConfigurableMockProvider) WithCreateError(err error) *ConfigurableMockProvider {
	m.createError = err
	return m
}

// Name returns the configured provider name.
func (m *ConfigurableMockProvider) Name() string {
	return m.name
}

// CreateLLM returns a handle wrapping the mock itself, or the configured
// error.
func (m *ConfigurableMockProvider) CreateLLM(cfg provider.Config) (*provider.ClientHandle, error) {
	m.mu.Lock()
	m.createCalled++
	m.mu.Unlock()

	if m.createError != nil {
		return nil, m.createError
	}
	return provider.NewClientHandle(m.name, cfg, m), nil
}

// RequiredEnvVars returns the configured env vars.
func (m *ConfigurableMockProvider) RequiredEnvVars() []string {
	return m.envVars
}

// ValidateConfig returns the configured validation error, if any.
func (m *ConfigurableMockProvider) ValidateConfig(cfg provider.Config) error {
	m.mu.Lock()
	m.validateCalled++
	m.mu.Unlock()

	return m.validateError
}

// DisplayName returns the configured display name, falling back to the
// provider name.
func (m *ConfigurableMockProvider) DisplayName() string {
	if m.displayName != "" {
		return m.displayName
	}
	return m.name
}

// SupportsStreaming returns the configured streaming flag.
func (m *ConfigurableMockProvider) SupportsStreaming() bool {
	return m.supportsStreaming
}

// DefaultModel returns the configured default model.
func (m *ConfigurableMockProvider) DefaultModel() string {
	return m.defaultModel
}

// AvailableModels returns the configured model list.
func (m *ConfigurableMockProvider) AvailableModels() []string {
	return m.models
}

// CreateCalled returns how many times CreateLLM ran.
func (m *ConfigurableMockProvider) CreateCalled() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.createCalled
}

// ValidateCalled returns how many times ValidateConfig ran.
func (m *ConfigurableMockProvider) ValidateCalled() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.validateCalled
}
