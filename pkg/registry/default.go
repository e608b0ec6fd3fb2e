package registry

import "sync"

// Process-wide default registry. Construction is lazy and guarded so that
// concurrent first access builds it at most once; after that the registry
// is read-only for the remainder of the process.
var (
	defaultMu       sync.Mutex
	defaultRegistry *Registry
	defaultOptions  Options
)

// Default returns the process-wide registry, constructing it on first
// access: built-ins load first, then custom provider discovery runs exactly
// once. Subsequent calls return the same instance.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultRegistry == nil {
		defaultRegistry = New(defaultOptions)
	}
	return defaultRegistry
}

// ConfigureDefault sets the options used to build the default registry and
// discards any instance built so far; the next Default call rebuilds with
// the new options. Call it during startup, before handing the registry out.
func ConfigureDefault(opts Options) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultOptions = opts
	defaultRegistry = nil
}

// ResetDefault discards the default registry so the next Default call
// rebuilds it. Intended for test isolation.
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultRegistry = nil
}
