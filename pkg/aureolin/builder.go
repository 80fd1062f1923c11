package aureolin

import "net/http"

// Binding declares how one positional handler argument is filled from the
// request. Build bindings with Body, Param, Query, Header, Ctx and Custom.
type Binding struct {
	Index   int
	Source  Source
	Meta    string
	Extract Extractor
}

// Body binds the parsed request body to the argument at index.
func Body(index int) Binding {
	return Binding{Index: index, Source: SourceBody}
}

// Param binds the named path parameter to the argument at index.
func Param(index int, name string) Binding {
	return Binding{Index: index, Source: SourceParam, Meta: name}
}

// Query binds the named query parameter to the argument at index.
func Query(index int, name string) Binding {
	return Binding{Index: index, Source: SourceQuery, Meta: name}
}

// Header binds the named request header to the argument at index.
func Header(index int, name string) Binding {
	return Binding{Index: index, Source: SourceHeader, Meta: name}
}

// Ctx binds the request context itself to the argument at index.
func Ctx(index int) Binding {
	return Binding{Index: index, Source: SourceContext}
}

// Custom binds the result of a user-supplied extractor to the argument at
// index. The extractor receives the context and name.
func Custom(index int, name string, extract Extractor) Binding {
	return Binding{Index: index, Source: SourceCustom, Meta: name, Extract: extract}
}

// ControllerBuilder declares endpoints for one registered controller. All
// methods record into the application's stores immediately and return the
// builder for chaining; registration problems surface when the application
// bootstraps, not here.
type ControllerBuilder struct {
	app *App
	key string
}

// Key returns the controller key the builder declares endpoints for.
func (b *ControllerBuilder) Key() string {
	return b.key
}

// Route declares an endpoint for an arbitrary HTTP method.
func (b *ControllerBuilder) Route(method, subPath, handlerName string, bindings ...Binding) *ControllerBuilder {
	b.app.record(b.app.endpoints.RegisterEndpoint(b.key, method, subPath, handlerName))
	for _, bd := range bindings {
		b.app.record(b.app.params.RegisterBinding(ParameterBinding{
			ControllerKey: b.key,
			HandlerName:   handlerName,
			Index:         bd.Index,
			Source:        bd.Source,
			Meta:          bd.Meta,
			Extract:       bd.Extract,
		}))
	}
	return b
}

// Get declares a GET endpoint.
func (b *ControllerBuilder) Get(subPath, handlerName string, bindings ...Binding) *ControllerBuilder {
	return b.Route(http.MethodGet, subPath, handlerName, bindings...)
}

// Post declares a POST endpoint.
func (b *ControllerBuilder) Post(subPath, handlerName string, bindings ...Binding) *ControllerBuilder {
	return b.Route(http.MethodPost, subPath, handlerName, bindings...)
}

// Put declares a PUT endpoint.
func (b *ControllerBuilder) Put(subPath, handlerName string, bindings ...Binding) *ControllerBuilder {
	return b.Route(http.MethodPut, subPath, handlerName, bindings...)
}

// Delete declares a DELETE endpoint.
func (b *ControllerBuilder) Delete(subPath, handlerName string, bindings ...Binding) *ControllerBuilder {
	return b.Route(http.MethodDelete, subPath, handlerName, bindings...)
}

// Patch declares a PATCH endpoint.
func (b *ControllerBuilder) Patch(subPath, handlerName string, bindings ...Binding) *ControllerBuilder {
	return b.Route(http.MethodPatch, subPath, handlerName, bindings...)
}

// Head declares a HEAD endpoint.
func (b *ControllerBuilder) Head(subPath, handlerName string, bindings ...Binding) *ControllerBuilder {
	return b.Route(http.MethodHead, subPath, handlerName, bindings...)
}

// Options declares an OPTIONS endpoint.
func (b *ControllerBuilder) Options(subPath, handlerName string, bindings ...Binding) *ControllerBuilder {
	return b.Route(http.MethodOptions, subPath, handlerName, bindings...)
}
