package adapters

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fossabot/Aureolin/pkg/aureolin"
)

// EchoRouter implements aureolin.Router for Echo v4. Echo's own router
// provides route matching and the method-not-allowed responder; the adapter
// only converts path syntax and bridges the context.
type EchoRouter struct {
	engine     *echo.Echo
	middleware []aureolin.MiddlewareFunc
}

// NewEchoRouter creates an adapter around a fresh Echo instance.
func NewEchoRouter() *EchoRouter {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	return &EchoRouter{engine: e}
}

// NewEchoRouterFrom wraps an existing Echo instance.
func NewEchoRouterFrom(e *echo.Echo) *EchoRouter {
	return &EchoRouter{engine: e}
}

// Engine returns the underlying Echo instance for advanced configuration.
func (r *EchoRouter) Engine() *echo.Echo {
	return r.engine
}

// Use adds global middleware. Middleware added first wraps outermost. The
// chain applies to matched routes only; Echo's native 404/405 handling stays
// untouched.
func (r *EchoRouter) Use(middleware aureolin.MiddlewareFunc) {
	r.middleware = append(r.middleware, middleware)
}

// Register adds a route, converting {name} and {name:type} parameters to
// Echo's :name syntax and {*} to Echo's wildcard.
func (r *EchoRouter) Register(method string, path aureolin.RoutePattern, handler aureolin.HandlerFunc) error {
	chain := handler
	for i := len(r.middleware) - 1; i >= 0; i-- {
		chain = r.middleware[i](chain)
	}

	echoPath := path.Convert(func(name string) string { return ":" + name }, "*")
	r.engine.Add(method, echoPath, func(c echo.Context) error {
		ctx := &echoContext{c: c}
		if err := chain(ctx); err != nil {
			return err
		}
		return ctx.flush()
	})
	return nil
}

// Start starts the server.
func (r *EchoRouter) Start(addr string) error {
	return r.engine.Start(addr)
}

// Shutdown stops the server gracefully.
func (r *EchoRouter) Shutdown(ctx context.Context) error {
	return r.engine.Shutdown(ctx)
}

// Name returns the adapter name.
func (r *EchoRouter) Name() string {
	return "Echo"
}

// echoContext implements aureolin.Context for Echo. The response status and
// body stay pending until flush so the whole chain sees them as mutable.
type echoContext struct {
	c       echo.Context
	status  int
	body    any
	bodySet bool
}

func (ec *echoContext) Method() string {
	return ec.c.Request().Method
}

func (ec *echoContext) Path() string {
	return ec.c.Request().URL.Path
}

func (ec *echoContext) RealIP() string {
	return ec.c.RealIP()
}

func (ec *echoContext) ContentType() string {
	return ec.c.Request().Header.Get(echo.HeaderContentType)
}

func (ec *echoContext) Param(name string) string {
	return ec.c.Param(name)
}

func (ec *echoContext) Query(name string) string {
	return ec.c.QueryParam(name)
}

func (ec *echoContext) Header(name string) string {
	return ec.c.Request().Header.Get(name)
}

func (ec *echoContext) SetHeader(key, value string) {
	ec.c.Response().Header().Set(key, value)
}

func (ec *echoContext) Bind(v any) error {
	return ec.c.Bind(v)
}

// RawBody reads the request body and restores it so a later Bind still works.
func (ec *echoContext) RawBody() ([]byte, error) {
	req := ec.c.Request()
	if req.Body == nil {
		return nil, nil
	}
	data, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	req.Body = io.NopCloser(bytes.NewReader(data))
	return data, nil
}

func (ec *echoContext) Status() int {
	if ec.status == 0 {
		return http.StatusOK
	}
	return ec.status
}

func (ec *echoContext) SetStatus(code int) {
	ec.status = code
}

func (ec *echoContext) Body() any {
	return ec.body
}

func (ec *echoContext) SetBody(v any) {
	ec.body = v
	ec.bodySet = true
}

func (ec *echoContext) BodySet() bool {
	return ec.bodySet
}

func (ec *echoContext) Get(key string) any {
	return ec.c.Get(key)
}

func (ec *echoContext) Set(key string, val any) {
	ec.c.Set(key, val)
}

// flush writes the pending status and body once the chain has completed.
func (ec *echoContext) flush() error {
	if ec.c.Response().Committed {
		return nil
	}
	if !ec.bodySet {
		return ec.c.NoContent(ec.Status())
	}
	switch body := ec.body.(type) {
	case aureolin.HTML:
		return ec.c.HTML(ec.Status(), string(body))
	case string:
		return ec.c.String(ec.Status(), body)
	case []byte:
		return ec.c.Blob(ec.Status(), echo.MIMEOctetStream, body)
	default:
		return ec.c.JSON(ec.Status(), body)
	}
}
