package aureolin

import (
	"fmt"
	"net/http"
)

// Error represents an HTTP error with a specific status code and message.
// Handlers return it (or any error wrapping it) to control the response
// status; the optional Data payload replaces the default {status, message}
// body when set.
type Error struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

// NewError creates a new Error with the given status code and message
func NewError(status int, message string) *Error {
	return &Error{
		Status:  status,
		Message: message,
	}
}

// WithData attaches an arbitrary payload that becomes the response body.
func (e *Error) WithData(data any) *Error {
	e.Data = data
	return e
}

// Common HTTP error constructors for convenience

// ErrBadRequest creates a 400 Bad Request error
func ErrBadRequest(message string) *Error {
	return NewError(http.StatusBadRequest, message)
}

// ErrUnauthorized creates a 401 Unauthorized error
func ErrUnauthorized(message string) *Error {
	return NewError(http.StatusUnauthorized, message)
}

// ErrForbidden creates a 403 Forbidden error
func ErrForbidden(message string) *Error {
	return NewError(http.StatusForbidden, message)
}

// ErrNotFound creates a 404 Not Found error
func ErrNotFound(message string) *Error {
	return NewError(http.StatusNotFound, message)
}

// ErrConflict creates a 409 Conflict error
func ErrConflict(message string) *Error {
	return NewError(http.StatusConflict, message)
}

// ErrUnsupportedMediaType creates a 415 Unsupported Media Type error
func ErrUnsupportedMediaType(message string) *Error {
	return NewError(http.StatusUnsupportedMediaType, message)
}

// ErrUnprocessableEntity creates a 422 Unprocessable Entity error
func ErrUnprocessableEntity(message string) *Error {
	return NewError(http.StatusUnprocessableEntity, message)
}

// ErrInternalServerError creates a 500 Internal Server Error
func ErrInternalServerError(message string) *Error {
	return NewError(http.StatusInternalServerError, message)
}

// Configuration errors. All of them are detected during route assembly and
// abort startup.

// ControllerNotFoundError reports an endpoint whose controller key was never
// registered.
type ControllerNotFoundError struct {
	Key string
}

func (e *ControllerNotFoundError) Error() string {
	return fmt.Sprintf("controller %q is referenced by an endpoint but was never registered", e.Key)
}

// UnsupportedMethodError reports an endpoint declared with an HTTP method the
// router does not support.
type UnsupportedMethodError struct {
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("unsupported HTTP method %q", e.Method)
}

// HandlerNotFoundError reports an endpoint whose handler name does not
// resolve to an exported method on its controller.
type HandlerNotFoundError struct {
	Key         string
	HandlerName string
}

func (e *HandlerNotFoundError) Error() string {
	return fmt.Sprintf("controller %q has no method %q", e.Key, e.HandlerName)
}

// DuplicateRouteError reports two endpoints resolving to the same method and
// effective path.
type DuplicateRouteError struct {
	Method string
	Path   string
}

func (e *DuplicateRouteError) Error() string {
	return fmt.Sprintf("duplicate route: %s %s is registered more than once", e.Method, e.Path)
}

// DuplicateControllerError reports a second registration under an existing
// controller key.
type DuplicateControllerError struct {
	Key string
}

func (e *DuplicateControllerError) Error() string {
	return fmt.Sprintf("controller %q is already registered", e.Key)
}

// DuplicateBindingError reports two parameter bindings claiming the same
// argument index of the same handler.
type DuplicateBindingError struct {
	Key         string
	HandlerName string
	Index       int
}

func (e *DuplicateBindingError) Error() string {
	return fmt.Sprintf("argument %d of %s.%s is bound more than once", e.Index, e.Key, e.HandlerName)
}

// BindingIndexError reports a parameter binding whose argument index is out
// of range for the resolved handler signature.
type BindingIndexError struct {
	Key         string
	HandlerName string
	Index       int
	NumIn       int
}

func (e *BindingIndexError) Error() string {
	return fmt.Sprintf("binding index %d out of range: %s.%s takes %d argument(s)", e.Index, e.Key, e.HandlerName, e.NumIn)
}

// ErrFrozen is returned when registering into a store after route assembly
// has frozen it.
var ErrFrozen = fmt.Errorf("registry is frozen: registration is not allowed after the server has started")
