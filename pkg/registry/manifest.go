package registry

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cecil-the-coder/llm-registry/pkg/provider"
	"github.com/cecil-the-coder/llm-registry/pkg/providers/openaicompat"
)

// manifest is the schema of a plugin manifest file. One file may declare
// any number of custom providers.
type manifest struct {
	Providers []openaicompat.Settings `yaml:"providers"`
}

// loadManifest parses a plugin manifest and registers every provider entry
// it declares. A file that fails to parse is skipped with a warning; an
// entry that fails to instantiate is skipped with a warning without
// affecting the other entries in the same file. A file declaring zero
// entries contributes nothing, silently.
func (r *Registry) loadManifest(path string) {
	base := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		r.logger.Printf("Warning: failed to load custom provider from %s: %v", base, err)
		return
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		r.logger.Printf("Warning: failed to load custom provider from %s: %v", base, err)
		return
	}

	for _, settings := range m.Providers {
		p, err := openaicompat.New(settings)
		if err != nil {
			r.logger.Printf("Warning: skipping custom provider entry in %s: %v", base, err)
			continue
		}
		r.Register(func() provider.Provider { return p }, base)
	}
}
