package provider

import (
	"github.com/glorpus-work/binstash/pkg/download"
	"github.com/glorpus-work/binstash/pkg/errors"
)

// Registry maps provider tags from artifact entries to Provider
// implementations. It is populated at startup and read-only afterwards.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// NewDefaultRegistry returns a registry with the built-in providers
// registered, backed by the given download manager.
func NewDefaultRegistry(dl download.Manager) *Registry {
	r := NewRegistry()
	r.Register("http", NewHTTPProvider(dl))
	return r
}

// Register adds a provider under the given tag, replacing any previous
// registration.
func (r *Registry) Register(tag string, p Provider) {
	r.providers[tag] = p
}

// Get returns the provider registered under tag.
func (r *Registry) Get(tag string) (Provider, error) {
	p, ok := r.providers[tag]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownProvider, "%s", tag)
	}
	return p, nil
}
