package aureolin

// Response represents an HTTP response with an explicit status code and body.
// Handlers return it when they need to control the status code; plain return
// values are sent as a 200 JSON body instead.
//
// Example:
//
//	func (c *UserController) CreateUser(req CreateUserRequest) (*aureolin.Response, error) {
//	    user, err := c.users.Create(req)
//	    if err != nil {
//	        return nil, aureolin.ErrBadRequest(err.Error())
//	    }
//	    return aureolin.Created(user), nil
//	}
type Response struct {
	// StatusCode is the HTTP status code to return (e.g., 200, 201, 404)
	StatusCode int `json:"-"`

	// Body is the response body sent to the client
	Body any `json:"body,omitempty"`

	// Headers are extra response headers set before the body is written
	Headers map[string]string `json:"-"`
}

// NewResponse creates a new Response with the specified status code and body
func NewResponse(statusCode int, body any) *Response {
	return &Response{
		StatusCode: statusCode,
		Body:       body,
	}
}

// WithHeader sets a response header and returns the response for chaining.
func (r *Response) WithHeader(key, value string) *Response {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[key] = value
	return r
}

// OK creates a 200 OK response with the given body
func OK(body any) *Response {
	return NewResponse(200, body)
}

// Created creates a 201 Created response with the given body
func Created(body any) *Response {
	return NewResponse(201, body)
}

// NoContent creates a 204 No Content response
func NoContent() *Response {
	return NewResponse(204, nil)
}

// BadRequest creates a 400 Bad Request response with the given error message
func BadRequest(message string) *Response {
	return NewResponse(400, map[string]string{"error": message})
}

// NotFound creates a 404 Not Found response with the given error message
func NotFound(message string) *Response {
	return NewResponse(404, map[string]string{"error": message})
}

// InternalServerError creates a 500 Internal Server Error response
func InternalServerError(message string) *Response {
	return NewResponse(500, map[string]string{"error": message})
}
