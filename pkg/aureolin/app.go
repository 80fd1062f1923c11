package aureolin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"reflect"
	"sync/atomic"
	"syscall"
)

// Module is a registration function run during bootstrap. Modules replace
// filesystem-driven discovery: the caller supplies an explicit, statically
// known list and they run in order, once.
type Module func(app *App) error

// App owns the declaration stores, assembles routes against its router and
// runs the server. All registration happens before Listen; the stores are
// frozen once the routes are assembled.
type App struct {
	cfg        *Config
	log        *slog.Logger
	router     Router
	endpoints  *EndpointStore
	params     *ParameterStore
	middleware *MiddlewareStore
	providers  *ProviderStore
	events     *eventBus
	renderer   Renderer
	modules    []Module
	configErrs []error
	booted     atomic.Bool
}

// New creates an application on the given router adapter. A nil config uses
// DefaultConfig.
func New(cfg *Config, router Router) *App {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &App{
		cfg:        cfg,
		log:        newLogger(cfg.Logger),
		router:     router,
		endpoints:  NewEndpointStore(),
		params:     NewParameterStore(),
		middleware: NewMiddlewareStore(),
		providers:  NewProviderStore(),
		events:     newEventBus(),
		renderer:   DefaultRenderer,
	}
}

// Config returns the application configuration.
func (a *App) Config() *Config { return a.cfg }

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger { return a.log }

// Router returns the underlying router adapter.
func (a *App) Router() Router { return a.router }

// Endpoints exposes the endpoint store for direct registration.
func (a *App) Endpoints() *EndpointStore { return a.endpoints }

// Params exposes the parameter store for direct registration.
func (a *App) Params() *ParameterStore { return a.params }

// Middleware exposes the middleware store.
func (a *App) Middleware() *MiddlewareStore { return a.middleware }

// SetRenderer replaces the element renderer used by dispatch.
func (a *App) SetRenderer(r Renderer) {
	if r != nil {
		a.renderer = r
	}
}

// Controller registers a controller under a key derived from its type name
// and returns a builder for declaring its endpoints.
func (a *App) Controller(basePath string, instance any) *ControllerBuilder {
	return a.ControllerNamed(controllerKey(instance), basePath, instance)
}

// ControllerNamed registers a controller under an explicit key.
func (a *App) ControllerNamed(key, basePath string, instance any) *ControllerBuilder {
	a.record(a.endpoints.RegisterController(key, basePath, instance))
	return &ControllerBuilder{app: a, key: key}
}

// Use appends a global middleware; registration order is execution order.
func (a *App) Use(m Middleware) *App {
	a.record(a.middleware.Register(m))
	return a
}

// Provide registers a named provider available during bootstrap.
func (a *App) Provide(name string, value any) *App {
	a.record(a.providers.Register(name, value))
	return a
}

// Provider resolves a registered provider by name.
func (a *App) Provider(name string) (any, bool) {
	return a.providers.Lookup(name)
}

// Register appends modules to run during bootstrap, in order.
func (a *App) Register(modules ...Module) *App {
	a.modules = append(a.modules, modules...)
	return a
}

// On subscribes a listener to a lifecycle event. Subscribe before Listen;
// events fired earlier are not replayed.
func (a *App) On(event string, fn Listener) {
	a.events.on(event, fn)
}

// record defers a registration error to bootstrap, where it aborts startup.
func (a *App) record(err error) {
	if err != nil {
		a.configErrs = append(a.configErrs, err)
	}
}

// Bootstrap runs the registered modules, applies the middleware chain,
// assembles all routes and freezes the stores. It runs exactly once; any
// failure is fatal to startup. Listen calls it implicitly.
func (a *App) Bootstrap() error {
	if !a.booted.CompareAndSwap(false, true) {
		return errors.New("application is already bootstrapped")
	}

	for _, mod := range a.modules {
		if err := mod(a); err != nil {
			return a.fatal(fmt.Errorf("module registration: %w", err))
		}
	}
	a.events.emit(EventProvidersLoaded)
	a.events.emit(EventControllersLoaded)
	a.events.emit(EventMiddlewareLoaded)

	if len(a.configErrs) > 0 {
		return a.fatal(errors.Join(a.configErrs...))
	}

	a.events.emit(EventConfigureMiddlewares)
	a.configureMiddlewares()

	if err := a.assemble(); err != nil {
		return a.fatal(err)
	}

	a.endpoints.Freeze()
	a.params.Freeze()
	a.middleware.Freeze()
	a.providers.Freeze()

	a.events.emit(EventReady)
	return nil
}

// Listen bootstraps the application and serves until interrupted. A positive
// port overrides the configured one; callback runs once the listener
// goroutine is up.
func (a *App) Listen(port int, callback func()) error {
	if port > 0 {
		a.cfg.Port = port
	}
	if err := a.Bootstrap(); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.router.Start(a.cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	fmt.Println(banner(a.cfg, a.router.Name()))
	a.log.Info("server started",
		slog.String("addr", a.cfg.Addr()),
		slog.String("adapter", a.router.Name()),
	)
	a.events.emit(EventStart, a.cfg.Port)
	if callback != nil {
		callback()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return a.fatal(err)
	case <-quit:
	}

	a.log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.router.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	a.log.Info("server shutdown complete")
	return nil
}

// Start serves on the configured port.
func (a *App) Start() error {
	return a.Listen(0, nil)
}

// configureMiddlewares applies the global chain to the router: the error trap
// wraps outermost, then request logging, body parsing and each registered
// middleware in registration order.
func (a *App) configureMiddlewares() {
	a.router.Use(errorTrap(func(err error) {
		a.events.emit(EventError, err)
		a.log.Error("request error", slog.String("error", err.Error()))
	}))
	if a.cfg.Logger.Enabled {
		logger := &requestLogger{log: a.log, cfg: a.cfg.Logger}
		a.router.Use(logger.Handle)
	}
	a.router.Use(bodyGuard(a.cfg.Body))
	for _, m := range a.middleware.All() {
		a.router.Use(m.Handle)
	}
}

// fatal reports a startup-fatal error on the event bus and returns it.
func (a *App) fatal(err error) error {
	a.events.emit(EventError, err)
	a.log.Error("startup failed", slog.String("error", err.Error()))
	return err
}

// controllerKey derives a registry key from a controller instance's type
// name, following pointers.
func controllerKey(instance any) string {
	t := reflect.TypeOf(instance)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}
