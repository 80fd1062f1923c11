package aureolin

import "sync"

// Registry is a generic append-only store that preserves insertion order.
// All declaration-time stores (controllers, endpoints, parameter bindings,
// middleware, providers) are built on top of it. Registration happens
// single-threaded during bootstrap; the lock only guards against misuse.
type Registry[T any] struct {
	mu    sync.RWMutex
	items []T
}

// NewRegistry creates an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{items: make([]T, 0)}
}

// Add appends an item to the registry.
func (r *Registry[T]) Add(item T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
}

// Items returns all items in insertion order.
func (r *Registry[T]) Items() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]T(nil), r.items...) // Return a copy
}

// FindBy returns the first item matching the predicate.
func (r *Registry[T]) FindBy(pred func(T) bool) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Len returns the number of registered items.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
