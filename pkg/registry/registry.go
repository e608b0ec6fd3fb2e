// Package registry maintains the process-wide mapping from provider
// identifier to provider implementation. It wires up the built-in provider
// set, discovers custom providers from a plugin directory, and exposes
// lookup, listing, availability and introspection operations.
package registry

import (
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/cecil-the-coder/llm-registry/pkg/provider"
)

// Factory constructs a fresh provider instance. Factories rather than live
// instances are registered so providers stay stateless; instances are
// created on demand and are cheap to build.
type Factory func() provider.Provider

// sourceBuiltin marks providers registered by the built-in set.
const sourceBuiltin = "builtin"

// Registry is the single source of truth mapping provider identifier to
// provider factory. After construction the mapping is effectively
// read-only; the mutex exists for safe concurrent reads during and after
// registration.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	sources   map[string]string
	logger    *log.Logger
}

// Options configures registry construction.
type Options struct {
	// PluginDir overrides the directory scanned for custom provider
	// modules. Empty means the default "plugins" directory next to the
	// running executable.
	PluginDir string

	// DisableDiscovery skips custom provider discovery entirely.
	DisableDiscovery bool

	// Logger receives discovery warnings. Nil means log.Default().
	Logger *log.Logger
}

// New builds a registry: built-in providers are registered eagerly in fixed
// order, then custom providers are discovered from the plugin directory.
func New(opts Options) *Registry {
	r := newRegistry(opts.Logger)
	r.registerBuiltins()
	if !opts.DisableDiscovery {
		dir := opts.PluginDir
		if dir == "" {
			dir = defaultPluginDir()
		}
		r.discoverCustomProviders(dir)
	}
	return r
}

func newRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	return &Registry{
		factories: make(map[string]Factory),
		sources:   make(map[string]string),
		logger:    logger,
	}
}

// Register adds a provider factory under the identifier the provider itself
// reports. Registering an identifier that already exists overwrites the
// previous entry and emits a warning naming the overriding source module;
// last registration wins.
func (r *Registry) Register(factory Factory, source string) {
	name := normalizeName(factory().Name())

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, exists := r.sources[name]; exists {
		r.logger.Printf("Warning: custom provider %q from %s overrides provider registered by %s",
			name, source, prev)
	}
	r.factories[name] = factory
	r.sources[name] = source
}

// Get returns a fresh instance of the named provider. The lookup is
// case-insensitive and never fails loudly for unknown names.
func (r *Registry) Get(name string) (provider.Provider, bool) {
	r.mu.RLock()
	factory, ok := r.factories[normalizeName(name)]
	r.mu.RUnlock()

	if !ok {
		return nil, false
	}
	return factory(), true
}

// List returns all registered identifiers sorted ascending, for
// deterministic enumeration in CLI help text and UI dropdowns.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsAvailable reports whether the named provider is registered. The check
// is case-insensitive.
func (r *Registry) IsAvailable(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[normalizeName(name)]
	return ok
}

// Info returns the descriptive record for the named provider. The provider
// is instantiated purely to query its descriptive methods; this requires no
// credentials.
func (r *Registry) Info(name string) (provider.Info, bool) {
	p, ok := r.Get(name)
	if !ok {
		return provider.Info{}, false
	}
	return provider.Describe(p), true
}

// normalizeName lowercases and trims an identifier so lookups are
// case-insensitive. The name a provider reports is normalized the same way
// before it becomes the mapping key.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
