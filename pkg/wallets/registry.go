package wallets

import (
	"sync"
)

// Registry holds the wallet adapters in registration order. The UI layer
// iterates it to render wallet-choice options, checking Available() per
// entry; registration order is therefore stable and part of the contract.
type Registry struct {
	adapters map[string]Adapter
	order    []string
	mu       sync.RWMutex
}

var (
	globalRegistry     *Registry
	globalRegistryOnce sync.Once
)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		adapters: make(map[string]Adapter),
	}
}

// InitGlobalRegistry initializes the global wallet registry.
func InitGlobalRegistry() *Registry {
	globalRegistryOnce.Do(func() {
		globalRegistry = NewRegistry()
	})
	return globalRegistry
}

// GetGlobalRegistry returns the global registry (nil if not initialized).
func GetGlobalRegistry() *Registry {
	return globalRegistry
}

// ResetGlobalRegistry resets the global registry (useful for testing).
func ResetGlobalRegistry() {
	globalRegistry = nil
	globalRegistryOnce = sync.Once{}
}

// Register adds an adapter (keyed by adapter.ID()). Re-registering an id
// replaces the adapter in place without changing its position (idempotent).
func (r *Registry) Register(adapter Adapter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := adapter.ID()
	if _, exists := r.adapters[id]; !exists {
		r.order = append(r.order, id)
	}
	r.adapters[id] = adapter
	return nil
}

// Get retrieves an adapter by id.
func (r *Registry) Get(id string) (Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adapter, exists := r.adapters[id]
	if !exists {
		return nil, &UnsupportedWalletError{ID: id}
	}
	return adapter, nil
}

// All returns the adapters in registration order.
func (r *Registry) All() []Adapter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Adapter, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.adapters[id])
	}
	return out
}

// Available returns the adapters whose provider is usable right now, in
// registration order.
func (r *Registry) Available() []Adapter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Adapter, 0, len(r.order))
	for _, id := range r.order {
		if a := r.adapters[id]; a.Available() {
			out = append(out, a)
		}
	}
	return out
}

// IDs returns the registered adapter ids in registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// IsSupported checks whether an adapter id is registered.
func (r *Registry) IsSupported(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.adapters[id]
	return exists
}

// Unregister removes an adapter (useful for testing).
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.adapters[id]; !exists {
		return
	}
	delete(r.adapters, id)
	for i, ordered := range r.order {
		if ordered == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}
