package piwik

import (
	"fmt"
	"sync"
)

// Registry creates the providers for a page and hands each one a unique
// instance name. The first provider is the default tracker and is unnamed.
type Registry struct {
	mu        sync.Mutex
	page      *Page
	count     int
	providers []*Provider
}

func NewRegistry(page *Page) *Registry {
	return &Registry{page: page}
}

func (r *Registry) NewProvider(settings Settings, opts ...ProviderOption) *Provider {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.count++
	p := newProvider(instanceName(r.count), r.page, settings, opts...)
	r.providers = append(r.providers, p)
	return p
}

// Providers returns the providers in creation order.
func (r *Registry) Providers() []*Provider {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Provider, len(r.providers))
	copy(out, r.providers)
	return out
}

func instanceName(n int) string {
	if n > 1 {
		return fmt.Sprintf("pwk%d", n)
	}
	return ""
}
