package aureolin

import (
	"errors"
	"fmt"
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// boundHandler is a controller method resolved at route assembly time,
// closed over its owning instance and its pre-sorted parameter bindings.
// Handle is the per-request dispatch function.
type boundHandler struct {
	controllerKey string
	handlerName   string
	method        reflect.Value
	methodType    reflect.Type
	bindings      []ParameterBinding
	renderer      Renderer
}

// newBoundHandler resolves the named method on the controller instance and
// validates the bindings against its signature. Both failures are
// configuration errors and abort startup.
func newBoundHandler(reg ControllerRegistration, ep EndpointRegistration, bindings []ParameterBinding, renderer Renderer) (*boundHandler, error) {
	method := reflect.ValueOf(reg.Instance).MethodByName(ep.HandlerName)
	if !method.IsValid() {
		return nil, &HandlerNotFoundError{Key: reg.Key, HandlerName: ep.HandlerName}
	}
	methodType := method.Type()
	for _, b := range bindings {
		if b.Index < 0 || b.Index >= methodType.NumIn() {
			return nil, &BindingIndexError{
				Key:         reg.Key,
				HandlerName: ep.HandlerName,
				Index:       b.Index,
				NumIn:       methodType.NumIn(),
			}
		}
	}
	if renderer == nil {
		renderer = DefaultRenderer
	}
	return &boundHandler{
		controllerKey: reg.Key,
		handlerName:   ep.HandlerName,
		method:        method,
		methodType:    methodType,
		bindings:      bindings,
		renderer:      renderer,
	}, nil
}

// Handle extracts the bound arguments, invokes the controller method and
// shapes the response. Errors returned by the handler itself are normalized
// here so they keep their status and data payload; extraction errors are
// returned to the surrounding error trap instead.
func (h *boundHandler) Handle(c Context) error {
	args := make([]reflect.Value, h.methodType.NumIn())
	for i := range args {
		args[i] = reflect.Zero(h.methodType.In(i))
	}
	for _, b := range h.bindings {
		v, err := h.extract(c, b, h.methodType.In(b.Index))
		if err != nil {
			return err
		}
		args[b.Index] = v
	}

	result, err := splitResults(h.method.Call(args))
	if err != nil {
		status, body := normalizeError(err)
		c.SetStatus(status)
		c.SetBody(body)
		return nil
	}
	if isNilValue(result) {
		// No return value: leave whatever the handler set on the context.
		return nil
	}

	if resp, ok := result.(*Response); ok {
		for key, value := range resp.Headers {
			c.SetHeader(key, value)
		}
		c.SetStatus(resp.StatusCode)
		if !isNilValue(resp.Body) {
			c.SetBody(resp.Body)
		}
		return nil
	}

	markup, rendered, err := h.renderer(result)
	if err != nil {
		status, body := normalizeError(err)
		c.SetStatus(status)
		c.SetBody(body)
		return nil
	}
	if rendered {
		c.SetBody(HTML(markup))
		return nil
	}

	c.SetBody(result)
	return nil
}

// extract produces the argument value for a single binding.
func (h *boundHandler) extract(c Context, b ParameterBinding, target reflect.Type) (reflect.Value, error) {
	switch b.Source {
	case SourceContext:
		return coerceValue(c, target)
	case SourceParam:
		return coerceString(c.Param(b.Meta), target)
	case SourceQuery:
		return coerceString(c.Query(b.Meta), target)
	case SourceHeader:
		return coerceString(c.Header(b.Meta), target)
	case SourceBody:
		return h.extractBody(c, target)
	case SourceCustom:
		if b.Extract == nil {
			return reflect.Value{}, fmt.Errorf("custom binding %q for %s.%s has no extractor", b.Meta, h.controllerKey, h.handlerName)
		}
		value, err := b.Extract(c, b.Meta)
		if err != nil {
			return reflect.Value{}, err
		}
		return coerceValue(value, target)
	default:
		return reflect.Value{}, fmt.Errorf("unknown binding source %d", b.Source)
	}
}

// extractBody binds the parsed request body into the argument type. String
// and []byte arguments receive the raw body.
func (h *boundHandler) extractBody(c Context, target reflect.Type) (reflect.Value, error) {
	switch {
	case target.Kind() == reflect.String:
		raw, err := c.RawBody()
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(string(raw)).Convert(target), nil
	case target.Kind() == reflect.Slice && target.Elem().Kind() == reflect.Uint8:
		raw, err := c.RawBody()
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(raw).Convert(target), nil
	case target.Kind() == reflect.Ptr:
		v := reflect.New(target.Elem())
		if err := c.Bind(v.Interface()); err != nil {
			return reflect.Value{}, err
		}
		return v, nil
	case target.Kind() == reflect.Interface && target.NumMethod() == 0:
		var body any
		if err := c.Bind(&body); err != nil {
			return reflect.Value{}, err
		}
		return coerceValue(body, target)
	default:
		v := reflect.New(target)
		if err := c.Bind(v.Interface()); err != nil {
			return reflect.Value{}, err
		}
		return v.Elem(), nil
	}
}

// splitResults separates a method's return values into a result value and an
// error. Supported shapes: (), (T), (error), (T, error).
func splitResults(outs []reflect.Value) (any, error) {
	var result any
	var err error
	for _, out := range outs {
		if out.Type().Implements(errorType) {
			if !out.IsNil() {
				err = out.Interface().(error)
			}
			continue
		}
		if result == nil {
			result = out.Interface()
		}
	}
	return result, err
}

// errorBody is the normalized error response shape.
type errorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// normalizeError maps a handler error to a response status and body. It
// must never itself fail; dispatch is a failure-terminal boundary.
func normalizeError(err error) (int, any) {
	status := 500
	message := ""
	var data any

	var httpErr *Error
	if errors.As(err, &httpErr) {
		if httpErr.Status != 0 {
			status = httpErr.Status
		}
		message = httpErr.Message
		data = httpErr.Data
	} else if err != nil {
		message = err.Error()
	}

	if data != nil {
		return status, data
	}
	if message == "" && status == 500 {
		message = "Internal Server Error"
	}
	return status, errorBody{Status: status, Message: message}
}

// isNilValue reports whether v is nil or a typed nil pointer/interface.
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
