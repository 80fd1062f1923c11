package aureolin

import (
	"errors"
	"strings"
	"sync/atomic"
)

// Middleware wraps the downstream handler chain. Handle receives the next
// handler and returns the wrapped one; middleware registered earlier wraps
// outermost and therefore runs first.
type Middleware interface {
	Handle(next HandlerFunc) HandlerFunc
}

// MiddlewareFn adapts a plain function to the Middleware interface.
type MiddlewareFn func(next HandlerFunc) HandlerFunc

// Handle implements Middleware.
func (f MiddlewareFn) Handle(next HandlerFunc) HandlerFunc {
	return f(next)
}

// MiddlewareStore holds global middleware in registration order. Insertion
// order is the execution order; there is no removal.
type MiddlewareStore struct {
	entries *Registry[Middleware]
	frozen  atomic.Bool
}

// NewMiddlewareStore creates an empty middleware store.
func NewMiddlewareStore() *MiddlewareStore {
	return &MiddlewareStore{entries: NewRegistry[Middleware]()}
}

// Register appends a middleware to the chain.
func (s *MiddlewareStore) Register(m Middleware) error {
	if s.frozen.Load() {
		return ErrFrozen
	}
	s.entries.Add(m)
	return nil
}

// All returns the registered middleware in registration order.
func (s *MiddlewareStore) All() []Middleware {
	return s.entries.Items()
}

// Freeze makes the store read-only. Called once after route assembly.
func (s *MiddlewareStore) Freeze() {
	s.frozen.Store(true)
}

// errorTrap converts any error escaping the middleware chain or a handler
// into a JSON {error, status} response and reports it through the notify
// callback. It wraps the whole chain, so a middleware that fails
// short-circuits everything downstream of it.
func errorTrap(notify func(err error)) MiddlewareFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(c Context) error {
			err := next(c)
			if err == nil {
				return nil
			}
			status := 500
			var httpErr *Error
			if errors.As(err, &httpErr) && httpErr.Status != 0 {
				status = httpErr.Status
			}
			c.SetStatus(status)
			c.SetBody(map[string]any{"error": err.Error(), "status": status})
			if notify != nil {
				notify(err)
			}
			return nil
		}
	}
}

// bodyGuard rejects request bodies whose content type is disabled in the
// body-parser configuration before any handler tries to bind them.
func bodyGuard(cfg BodyConfig) MiddlewareFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(c Context) error {
			ct := c.ContentType()
			if ct == "" {
				return next(c)
			}
			allowed := true
			switch {
			case strings.HasPrefix(ct, "application/json"):
				allowed = cfg.JSON
			case strings.HasPrefix(ct, "application/x-www-form-urlencoded"),
				strings.HasPrefix(ct, "multipart/form-data"):
				allowed = cfg.Form
			case strings.HasPrefix(ct, "text/"):
				allowed = cfg.Text
			}
			if !allowed {
				return ErrUnsupportedMediaType("unsupported content type: " + ct)
			}
			return next(c)
		}
	}
}
