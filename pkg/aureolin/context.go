package aureolin

import "context"

// Context provides a framework-agnostic view of a single request/response
// exchange. Adapters back it with their native context and defer writing the
// response until the handler chain completes, so Status and Body stay mutable
// for the whole chain.
type Context interface {
	// Request data
	Method() string
	Path() string
	RealIP() string
	ContentType() string

	// Parameters
	Param(name string) string
	Query(name string) string
	Header(name string) string

	// Body handling
	Bind(v any) error
	RawBody() ([]byte, error)

	// Response
	Status() int
	SetStatus(code int)
	Body() any
	SetBody(v any)
	BodySet() bool
	SetHeader(key, value string)

	// Per-request data
	Get(key string) any
	Set(key string, val any)
}

// HandlerFunc defines the signature for HTTP handlers.
type HandlerFunc func(Context) error

// MiddlewareFunc defines the signature for middleware.
type MiddlewareFunc func(HandlerFunc) HandlerFunc

// HTML marks a response body as pre-rendered markup. Adapters write it with
// a text/html content type instead of JSON-encoding it.
type HTML string

// Router is the contract the underlying HTTP server must offer. Adapters for
// Echo, Gin and Fiber live in pkg/aureolin/adapters.
type Router interface {
	// Register adds a route for the given HTTP method. The path uses Aureolin
	// pattern syntax ({name}, {name:type}, {*}); adapters convert it to their
	// native parameter syntax.
	Register(method string, path RoutePattern, handler HandlerFunc) error

	// Use adds global middleware. Middleware registered first wraps outermost.
	Use(middleware MiddlewareFunc)

	// Server lifecycle
	Start(addr string) error
	Shutdown(ctx context.Context) error

	// Name identifies the adapter ("Echo", "Gin", "Fiber").
	Name() string
}
