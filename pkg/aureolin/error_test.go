package aureolin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	err := NewError(404, "user not found")
	assert.Equal(t, "HTTP 404: user not found", err.Error())
}

func TestError_WithData(t *testing.T) {
	err := NewError(422, "invalid").WithData(map[string]string{"field": "name"})
	assert.Equal(t, 422, err.Status)
	assert.Equal(t, map[string]string{"field": "name"}, err.Data)
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		err    *Error
		status int
	}{
		{ErrBadRequest("x"), 400},
		{ErrUnauthorized("x"), 401},
		{ErrForbidden("x"), 403},
		{ErrNotFound("x"), 404},
		{ErrConflict("x"), 409},
		{ErrUnsupportedMediaType("x"), 415},
		{ErrUnprocessableEntity("x"), 422},
		{ErrInternalServerError("x"), 500},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.err.Status)
		assert.Equal(t, "x", tt.err.Message)
	}
}

func TestConfigurationErrorMessages(t *testing.T) {
	assert.Contains(t, (&ControllerNotFoundError{Key: "UserController"}).Error(), "UserController")
	assert.Contains(t, (&UnsupportedMethodError{Method: "TRACE"}).Error(), "TRACE")
	assert.Contains(t, (&HandlerNotFoundError{Key: "C", HandlerName: "Nope"}).Error(), "Nope")
	assert.Contains(t, (&DuplicateRouteError{Method: "GET", Path: "/users"}).Error(), "GET /users")
	assert.Contains(t, (&DuplicateControllerError{Key: "C"}).Error(), "already registered")
	assert.Contains(t, (&DuplicateBindingError{Key: "C", HandlerName: "H", Index: 1}).Error(), "C.H")
	assert.Contains(t, (&BindingIndexError{Key: "C", HandlerName: "H", Index: 4, NumIn: 2}).Error(), "out of range")
}
