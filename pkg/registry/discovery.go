package registry

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"plugin"
	"strings"

	"github.com/cecil-the-coder/llm-registry/pkg/provider"
)

// NewProvidersSymbol is the symbol a native plugin must export:
// a func() []provider.Provider returning the provider variants it supplies.
const NewProvidersSymbol = "NewProviders"

// defaultPluginDir is the well-known plugin location: a "plugins" directory
// next to the running executable.
func defaultPluginDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "plugins"
	}
	return filepath.Join(filepath.Dir(exe), "plugins")
}

// discoverCustomProviders scans dir non-recursively for loadable plugin
// modules and registers every provider they supply. A missing directory is
// a no-op. One broken module never aborts discovery of the others: load
// failures are downgraded to warnings and the scan continues. Modules are
// visited in listing order, so when two modules declare the same provider
// name the later one wins.
func (r *Registry) discoverCustomProviders(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return
		}
		r.logger.Printf("Warning: failed to read plugin directory %s: %v", dir, err)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yaml", ".yml":
			r.loadModule(path, func() { r.loadManifest(path) })
		case ".so":
			r.loadModule(path, func() { r.loadNativePlugin(path) })
		}
	}
}

// loadModule isolates the load of a single plugin module: a panic while
// loading or instantiating providers is contained and reported as a
// warning so the remaining modules still load.
func (r *Registry) loadModule(path string, load func()) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Printf("Warning: failed to load custom provider from %s: %v",
				filepath.Base(path), rec)
		}
	}()
	load()
}

// loadNativePlugin opens a compiled Go plugin and registers the providers
// returned by its NewProviders symbol. Values that do not satisfy the
// provider contract are skipped.
func (r *Registry) loadNativePlugin(path string) {
	base := filepath.Base(path)

	plug, err := plugin.Open(path)
	if err != nil {
		r.logger.Printf("Warning: failed to load custom provider from %s: %v", base, err)
		return
	}

	sym, err := plug.Lookup(NewProvidersSymbol)
	if err != nil {
		r.logger.Printf("Warning: failed to load custom provider from %s: %v", base, err)
		return
	}

	ctor, ok := sym.(func() []provider.Provider)
	if !ok {
		r.logger.Printf("Warning: plugin %s exports %s with unexpected type %T",
			base, NewProvidersSymbol, sym)
		return
	}

	for _, p := range ctor() {
		if p == nil {
			continue
		}
		r.Register(func() provider.Provider { return p }, base)
	}
}
