package aureolin

import "sync/atomic"

// ControllerRegistration records a controller type: its unique key, the base
// path shared by all of its endpoints, and the instance requests are served
// on.
type ControllerRegistration struct {
	Key      string
	BasePath string
	Instance any
}

// EndpointRegistration records one HTTP method + sub path binding to a named
// handler method on a controller. Many endpoints reference one controller.
type EndpointRegistration struct {
	ControllerKey string
	Method        string
	SubPath       string
	HandlerName   string
}

// EndpointStore holds controller and endpoint registrations. An endpoint may
// be registered before its controller; the dangling reference is only
// detected during route assembly, because declaration order across modules is
// not guaranteed.
type EndpointStore struct {
	controllers *Registry[ControllerRegistration]
	endpoints   *Registry[EndpointRegistration]
	frozen      atomic.Bool
}

// NewEndpointStore creates an empty endpoint store.
func NewEndpointStore() *EndpointStore {
	return &EndpointStore{
		controllers: NewRegistry[ControllerRegistration](),
		endpoints:   NewRegistry[EndpointRegistration](),
	}
}

// RegisterController records a controller under a unique key. Registering the
// same key twice is rejected.
func (s *EndpointStore) RegisterController(key, basePath string, instance any) error {
	if s.frozen.Load() {
		return ErrFrozen
	}
	if _, exists := s.LookupController(key); exists {
		return &DuplicateControllerError{Key: key}
	}
	s.controllers.Add(ControllerRegistration{Key: key, BasePath: basePath, Instance: instance})
	return nil
}

// RegisterEndpoint records a method/path binding for a controller key. The
// key is not validated here; see the store contract above.
func (s *EndpointStore) RegisterEndpoint(controllerKey, method, subPath, handlerName string) error {
	if s.frozen.Load() {
		return ErrFrozen
	}
	s.endpoints.Add(EndpointRegistration{
		ControllerKey: controllerKey,
		Method:        method,
		SubPath:       subPath,
		HandlerName:   handlerName,
	})
	return nil
}

// LookupController resolves a controller registration by key.
func (s *EndpointStore) LookupController(key string) (ControllerRegistration, bool) {
	return s.controllers.FindBy(func(c ControllerRegistration) bool {
		return c.Key == key
	})
}

// Controllers returns all controller registrations in declaration order.
func (s *EndpointStore) Controllers() []ControllerRegistration {
	return s.controllers.Items()
}

// Endpoints returns all endpoint registrations in declaration order.
func (s *EndpointStore) Endpoints() []EndpointRegistration {
	return s.endpoints.Items()
}

// Freeze makes the store read-only. Called once after route assembly.
func (s *EndpointStore) Freeze() {
	s.frozen.Store(true)
}
