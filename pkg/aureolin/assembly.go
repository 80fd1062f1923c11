package aureolin

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

// supportedMethods is the set of HTTP verbs endpoints may declare.
var supportedMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodDelete:  {},
	http.MethodPatch:   {},
	http.MethodHead:    {},
	http.MethodOptions: {},
}

// assemble translates the stores into live router registrations. For each
// endpoint in declaration order it resolves the controller, computes the
// effective path, binds the handler method to its instance and registers the
// dispatch wrapper with the router. Runs exactly once, before the server
// accepts connections; any failure prevents startup.
func (a *App) assemble() error {
	seen := make(map[string]struct{})

	for _, ep := range a.endpoints.Endpoints() {
		reg, ok := a.endpoints.LookupController(ep.ControllerKey)
		if !ok {
			return &ControllerNotFoundError{Key: ep.ControllerKey}
		}

		method := strings.ToUpper(ep.Method)
		if _, ok := supportedMethods[method]; !ok {
			return &UnsupportedMethodError{Method: ep.Method}
		}

		path := joinPath(reg.BasePath, ep.SubPath)
		routeKey := method + " " + path
		if _, dup := seen[routeKey]; dup {
			return &DuplicateRouteError{Method: method, Path: path}
		}
		seen[routeKey] = struct{}{}

		pattern, err := ParsePattern(path)
		if err != nil {
			return err
		}

		bindings := a.params.Bindings(ep.ControllerKey, ep.HandlerName)
		handler, err := newBoundHandler(reg, ep, bindings, a.renderer)
		if err != nil {
			return err
		}

		if err := a.router.Register(method, pattern, handler.Handle); err != nil {
			return fmt.Errorf("register %s %s: %w", method, path, err)
		}
		a.log.Debug("route registered",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("handler", ep.ControllerKey+"."+ep.HandlerName),
		)
		a.events.emit(EventConfigureRouter, ep)
	}

	a.events.emit(EventConfigureRouters)
	return nil
}
