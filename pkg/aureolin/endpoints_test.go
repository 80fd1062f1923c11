package aureolin

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeController struct{}

func TestEndpointStore_RegisterAndLookupController(t *testing.T) {
	store := NewEndpointStore()

	err := store.RegisterController("UserController", "/users", &fakeController{})
	require.NoError(t, err)

	reg, ok := store.LookupController("UserController")
	require.True(t, ok)
	assert.Equal(t, "UserController", reg.Key)
	assert.Equal(t, "/users", reg.BasePath)
	assert.NotNil(t, reg.Instance)
}

func TestEndpointStore_DuplicateControllerRejected(t *testing.T) {
	store := NewEndpointStore()

	require.NoError(t, store.RegisterController("UserController", "/users", &fakeController{}))
	err := store.RegisterController("UserController", "/other", &fakeController{})

	var dup *DuplicateControllerError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "UserController", dup.Key)
	assert.Contains(t, err.Error(), "UserController")
}

func TestEndpointStore_EndpointBeforeController(t *testing.T) {
	store := NewEndpointStore()

	// Declaration order across modules is not guaranteed, so an endpoint may
	// land before its controller. Detection is deferred to route assembly.
	err := store.RegisterEndpoint("UserController", http.MethodGet, "/{id}", "GetUser")
	require.NoError(t, err)

	_, ok := store.LookupController("UserController")
	assert.False(t, ok)

	endpoints := store.Endpoints()
	require.Len(t, endpoints, 1)
	assert.Equal(t, "UserController", endpoints[0].ControllerKey)
}

func TestEndpointStore_EndpointsInDeclarationOrder(t *testing.T) {
	store := NewEndpointStore()
	require.NoError(t, store.RegisterController("C", "/", &fakeController{}))
	require.NoError(t, store.RegisterEndpoint("C", http.MethodGet, "/a", "A"))
	require.NoError(t, store.RegisterEndpoint("C", http.MethodPost, "/b", "B"))
	require.NoError(t, store.RegisterEndpoint("C", http.MethodGet, "/c", "C"))

	endpoints := store.Endpoints()
	require.Len(t, endpoints, 3)
	assert.Equal(t, "A", endpoints[0].HandlerName)
	assert.Equal(t, "B", endpoints[1].HandlerName)
	assert.Equal(t, "C", endpoints[2].HandlerName)
}

func TestEndpointStore_FrozenRejectsRegistration(t *testing.T) {
	store := NewEndpointStore()
	store.Freeze()

	assert.ErrorIs(t, store.RegisterController("C", "/", &fakeController{}), ErrFrozen)
	assert.ErrorIs(t, store.RegisterEndpoint("C", http.MethodGet, "/", "H"), ErrFrozen)
}
