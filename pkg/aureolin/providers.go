package aureolin

import (
	"fmt"
	"sync/atomic"
)

// ProviderRegistration is a named singleton made available to controllers and
// custom extractors during bootstrap.
type ProviderRegistration struct {
	Name  string
	Value any
}

// ProviderStore holds named providers. Providers load before controllers so a
// controller constructor can resolve its collaborators.
type ProviderStore struct {
	providers *Registry[ProviderRegistration]
	frozen    atomic.Bool
}

// NewProviderStore creates an empty provider store.
func NewProviderStore() *ProviderStore {
	return &ProviderStore{providers: NewRegistry[ProviderRegistration]()}
}

// Register records a provider under a unique name.
func (s *ProviderStore) Register(name string, value any) error {
	if s.frozen.Load() {
		return ErrFrozen
	}
	if _, exists := s.Lookup(name); exists {
		return fmt.Errorf("provider %q is already registered", name)
	}
	s.providers.Add(ProviderRegistration{Name: name, Value: value})
	return nil
}

// Lookup resolves a provider by name.
func (s *ProviderStore) Lookup(name string) (any, bool) {
	reg, ok := s.providers.FindBy(func(p ProviderRegistration) bool {
		return p.Name == name
	})
	if !ok {
		return nil, false
	}
	return reg.Value, true
}

// All returns the registered providers in registration order.
func (s *ProviderStore) All() []ProviderRegistration {
	return s.providers.Items()
}

// Freeze makes the store read-only. Called once after route assembly.
func (s *ProviderStore) Freeze() {
	s.frozen.Store(true)
}
