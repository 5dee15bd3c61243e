// Package providers manages LLM provider instances.
package providers

import (
	"fmt"
	"sync"

	"github.com/your-org/swot-reporter/llm/providers/shared"
)

// Registry manages provider instances
type Registry struct {
	providers map[string]shared.LLMProvider
	mu        sync.RWMutex
}

// NewRegistry creates a new provider registry
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]shared.LLMProvider),
	}
}

// Register registers a provider instance under its own name
func (r *Registry) Register(provider shared.LLMProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[provider.Name()] = provider
}

// Get gets a registered provider by name
func (r *Registry) Get(name string) (shared.LLMProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("provider not found: %s", name)
	}
	return provider, nil
}

// List returns a list of registered provider names
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}
