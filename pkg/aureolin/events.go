package aureolin

import "sync"

// Lifecycle event names emitted by the application. These are advisory
// notifications for external subscribers, not part of the request contract.
const (
	EventReady                = "app.ready"
	EventStart                = "app.start"
	EventProvidersLoaded      = "load.providers.done"
	EventControllersLoaded    = "load.controllers.done"
	EventMiddlewareLoaded     = "load.middleware.done"
	EventConfigureMiddlewares = "configure.middlewares"
	EventConfigureRouter      = "configure.router"
	EventConfigureRouters     = "configure.routers"
	EventError                = "error"
)

// Listener observes a lifecycle event. Arguments depend on the event:
// app.start carries the port, configure.router the endpoint registration,
// error the error value.
type Listener func(args ...any)

// eventBus is a minimal synchronous emitter keyed by event name.
type eventBus struct {
	mu        sync.RWMutex
	listeners map[string][]Listener
}

func newEventBus() *eventBus {
	return &eventBus{listeners: make(map[string][]Listener)}
}

func (b *eventBus) on(event string, fn Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[event] = append(b.listeners[event], fn)
}

func (b *eventBus) emit(event string, args ...any) {
	b.mu.RLock()
	subs := append([]Listener(nil), b.listeners[event]...)
	b.mu.RUnlock()
	for _, fn := range subs {
		fn(args...)
	}
}
