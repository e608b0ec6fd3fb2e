package registry

import (
	"fmt"
	"os"
	"strings"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces the environment overrides for registry options.
const envPrefix = "LLM_REGISTRY_"

// LoadOptions reads registry options from an optional YAML file, then
// applies LLM_REGISTRY_* environment overrides. A missing file is not an
// error; env-only configuration is fine.
//
// File schema:
//
//	plugin:
//	  dir: /etc/llm-registry/plugins
//	discovery:
//	  disabled: false
//
// Environment overrides: LLM_REGISTRY_PLUGIN_DIR,
// LLM_REGISTRY_DISCOVERY_DISABLED.
func LoadOptions(path string) (Options, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
				return Options{}, fmt.Errorf("failed to load registry config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return Options{}, fmt.Errorf("failed to read registry config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".", -1)
	}), nil); err != nil {
		return Options{}, fmt.Errorf("failed to load registry env overrides: %w", err)
	}

	return Options{
		PluginDir:        k.String("plugin.dir"),
		DisableDiscovery: k.Bool("discovery.disabled"),
	}, nil
}
