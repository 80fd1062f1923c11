package adapters

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/fossabot/Aureolin/pkg/aureolin"
)

// FiberRouter implements aureolin.Router for Fiber v2.
type FiberRouter struct {
	app        *fiber.App
	middleware []aureolin.MiddlewareFunc
}

// NewFiberRouter creates an adapter around a fresh Fiber app.
func NewFiberRouter() *FiberRouter {
	return &FiberRouter{
		app: fiber.New(fiber.Config{DisableStartupMessage: true}),
	}
}

// NewFiberRouterFrom wraps an existing Fiber app.
func NewFiberRouterFrom(app *fiber.App) *FiberRouter {
	return &FiberRouter{app: app}
}

// App returns the underlying Fiber app.
func (r *FiberRouter) App() *fiber.App {
	return r.app
}

// Use adds global middleware. Middleware added first wraps outermost.
func (r *FiberRouter) Use(middleware aureolin.MiddlewareFunc) {
	r.middleware = append(r.middleware, middleware)
}

// Register adds a route, converting {name} parameters to Fiber's :name
// syntax and {*} to Fiber's wildcard.
func (r *FiberRouter) Register(method string, path aureolin.RoutePattern, handler aureolin.HandlerFunc) error {
	chain := handler
	for i := len(r.middleware) - 1; i >= 0; i-- {
		chain = r.middleware[i](chain)
	}

	fiberPath := path.Convert(func(name string) string { return ":" + name }, "*")
	r.app.Add(method, fiberPath, func(c *fiber.Ctx) error {
		ctx := &fiberContext{c: c}
		if err := chain(ctx); err != nil {
			return err
		}
		return ctx.flush()
	})
	return nil
}

// Start starts the server.
func (r *FiberRouter) Start(addr string) error {
	return r.app.Listen(addr)
}

// Shutdown stops the server gracefully.
func (r *FiberRouter) Shutdown(ctx context.Context) error {
	return r.app.ShutdownWithContext(ctx)
}

// Name returns the adapter name.
func (r *FiberRouter) Name() string {
	return "Fiber"
}

// fiberContext implements aureolin.Context for Fiber.
type fiberContext struct {
	c       *fiber.Ctx
	status  int
	body    any
	bodySet bool
}

func (fc *fiberContext) Method() string {
	return fc.c.Method()
}

func (fc *fiberContext) Path() string {
	return fc.c.Path()
}

func (fc *fiberContext) RealIP() string {
	return fc.c.IP()
}

func (fc *fiberContext) ContentType() string {
	return fc.c.Get(fiber.HeaderContentType)
}

func (fc *fiberContext) Param(name string) string {
	return fc.c.Params(name)
}

func (fc *fiberContext) Query(name string) string {
	return fc.c.Query(name)
}

func (fc *fiberContext) Header(name string) string {
	return fc.c.Get(name)
}

func (fc *fiberContext) SetHeader(key, value string) {
	fc.c.Set(key, value)
}

func (fc *fiberContext) Bind(v any) error {
	return fc.c.BodyParser(v)
}

func (fc *fiberContext) RawBody() ([]byte, error) {
	return fc.c.Body(), nil
}

func (fc *fiberContext) Status() int {
	if fc.status == 0 {
		return http.StatusOK
	}
	return fc.status
}

func (fc *fiberContext) SetStatus(code int) {
	fc.status = code
}

func (fc *fiberContext) Body() any {
	return fc.body
}

func (fc *fiberContext) SetBody(v any) {
	fc.body = v
	fc.bodySet = true
}

func (fc *fiberContext) BodySet() bool {
	return fc.bodySet
}

func (fc *fiberContext) Get(key string) any {
	return fc.c.Locals(key)
}

func (fc *fiberContext) Set(key string, val any) {
	fc.c.Locals(key, val)
}

// flush writes the pending status and body once the chain has completed.
func (fc *fiberContext) flush() error {
	if !fc.bodySet {
		return fc.c.SendStatus(fc.Status())
	}
	switch body := fc.body.(type) {
	case aureolin.HTML:
		fc.c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return fc.c.Status(fc.Status()).SendString(string(body))
	case string:
		return fc.c.Status(fc.Status()).SendString(body)
	case []byte:
		return fc.c.Status(fc.Status()).Send(body)
	default:
		return fc.c.Status(fc.Status()).JSON(body)
	}
}
