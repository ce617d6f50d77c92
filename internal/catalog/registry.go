package catalog

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml
var configFiles embed.FS

// Registry holds the embedded provider defaults
type Registry struct {
	providers map[string]*ProviderDefaults
	mu        sync.RWMutex
}

// NewRegistry creates a registry and loads the embedded YAML files
func NewRegistry() (*Registry, error) {
	r := &Registry{
		providers: make(map[string]*ProviderDefaults),
	}

	for _, provider := range []string{"openai", "gemini", "openrouter"} {
		if err := r.loadProviderFile(provider); err != nil {
			return nil, fmt.Errorf("load %s defaults: %w", provider, err)
		}
	}

	return r, nil
}

// loadProviderFile loads one provider's defaults YAML file
func (r *Registry) loadProviderFile(provider string) error {
	filename := fmt.Sprintf("config/%s.yaml", provider)
	data, err := configFiles.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}

	var defaults ProviderDefaults
	if err := yaml.Unmarshal(data, &defaults); err != nil {
		return fmt.Errorf("unmarshal %s: %w", filename, err)
	}

	r.mu.Lock()
	r.providers[provider] = &defaults
	r.mu.Unlock()

	return nil
}

// Get returns the defaults for a provider
func (r *Registry) Get(provider string) (*ProviderDefaults, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defaults, ok := r.providers[provider]
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
	return defaults, nil
}
