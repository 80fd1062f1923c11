package adapters

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fossabot/Aureolin/pkg/aureolin"
)

// GinRouter implements aureolin.Router for Gin.
type GinRouter struct {
	engine     *gin.Engine
	server     *http.Server
	middleware []aureolin.MiddlewareFunc
}

// NewGinRouter creates an adapter around a fresh Gin engine with
// method-not-allowed responses enabled.
func NewGinRouter() *GinRouter {
	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	return &GinRouter{engine: engine}
}

// NewGinRouterFrom wraps an existing Gin engine.
func NewGinRouterFrom(engine *gin.Engine) *GinRouter {
	return &GinRouter{engine: engine}
}

// Engine returns the underlying Gin engine.
func (r *GinRouter) Engine() *gin.Engine {
	return r.engine
}

// Use adds global middleware. Middleware added first wraps outermost.
func (r *GinRouter) Use(middleware aureolin.MiddlewareFunc) {
	r.middleware = append(r.middleware, middleware)
}

// Register adds a route, converting {name} parameters to Gin's :name syntax
// and {*} to Gin's named catch-all.
func (r *GinRouter) Register(method string, path aureolin.RoutePattern, handler aureolin.HandlerFunc) error {
	chain := handler
	for i := len(r.middleware) - 1; i >= 0; i-- {
		chain = r.middleware[i](chain)
	}

	ginPath := path.Convert(func(name string) string { return ":" + name }, "*path")
	r.engine.Handle(method, ginPath, func(c *gin.Context) {
		ctx := &ginContext{c: c}
		if err := chain(ctx); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "status": http.StatusInternalServerError})
			return
		}
		ctx.flush()
	})
	return nil
}

// Start starts the server.
func (r *GinRouter) Start(addr string) error {
	r.server = &http.Server{Addr: addr, Handler: r.engine}
	return r.server.ListenAndServe()
}

// Shutdown stops the server gracefully.
func (r *GinRouter) Shutdown(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	return r.server.Shutdown(ctx)
}

// Name returns the adapter name.
func (r *GinRouter) Name() string {
	return "Gin"
}

// ginContext implements aureolin.Context for Gin.
type ginContext struct {
	c       *gin.Context
	status  int
	body    any
	bodySet bool
}

func (gc *ginContext) Method() string {
	return gc.c.Request.Method
}

func (gc *ginContext) Path() string {
	return gc.c.Request.URL.Path
}

func (gc *ginContext) RealIP() string {
	return gc.c.ClientIP()
}

func (gc *ginContext) ContentType() string {
	return gc.c.ContentType()
}

func (gc *ginContext) Param(name string) string {
	return gc.c.Param(name)
}

func (gc *ginContext) Query(name string) string {
	return gc.c.Query(name)
}

func (gc *ginContext) Header(name string) string {
	return gc.c.GetHeader(name)
}

func (gc *ginContext) SetHeader(key, value string) {
	gc.c.Writer.Header().Set(key, value)
}

func (gc *ginContext) Bind(v any) error {
	return gc.c.ShouldBind(v)
}

// RawBody reads the request body and restores it so a later Bind still works.
func (gc *ginContext) RawBody() ([]byte, error) {
	if gc.c.Request.Body == nil {
		return nil, nil
	}
	data, err := io.ReadAll(gc.c.Request.Body)
	if err != nil {
		return nil, err
	}
	gc.c.Request.Body = io.NopCloser(bytes.NewReader(data))
	return data, nil
}

func (gc *ginContext) Status() int {
	if gc.status == 0 {
		return http.StatusOK
	}
	return gc.status
}

func (gc *ginContext) SetStatus(code int) {
	gc.status = code
}

func (gc *ginContext) Body() any {
	return gc.body
}

func (gc *ginContext) SetBody(v any) {
	gc.body = v
	gc.bodySet = true
}

func (gc *ginContext) BodySet() bool {
	return gc.bodySet
}

func (gc *ginContext) Get(key string) any {
	val, _ := gc.c.Get(key)
	return val
}

func (gc *ginContext) Set(key string, val any) {
	gc.c.Set(key, val)
}

// flush writes the pending status and body once the chain has completed.
func (gc *ginContext) flush() {
	if gc.c.Writer.Written() {
		return
	}
	if !gc.bodySet {
		gc.c.Status(gc.Status())
		return
	}
	switch body := gc.body.(type) {
	case aureolin.HTML:
		gc.c.Data(gc.Status(), "text/html; charset=utf-8", []byte(body))
	case string:
		gc.c.String(gc.Status(), "%s", body)
	case []byte:
		gc.c.Data(gc.Status(), "application/octet-stream", body)
	default:
		gc.c.JSON(gc.Status(), body)
	}
}
