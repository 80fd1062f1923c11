package adapters

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fossabot/Aureolin/pkg/aureolin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newGinApp(t *testing.T) (*aureolin.App, *GinRouter) {
	t.Helper()
	router := NewGinRouter()
	app := aureolin.New(testConfig(), router)
	declareRoutes(app)
	return app, router
}

func TestGinRouter_ParamExtraction(t *testing.T) {
	app, router := newGinApp(t)
	require.NoError(t, app.Bootstrap())

	req := httptest.NewRequest(http.MethodGet, "/users/42", nil)
	rec := httptest.NewRecorder()
	router.Engine().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":42}`, rec.Body.String())
}

func TestGinRouter_BodyExtraction(t *testing.T) {
	app, router := newGinApp(t)
	require.NoError(t, app.Bootstrap())

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"ada"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.Engine().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"name":"ada"}`, rec.Body.String())
}

func TestGinRouter_HandlerErrorNormalized(t *testing.T) {
	app, router := newGinApp(t)
	require.NoError(t, app.Bootstrap())

	req := httptest.NewRequest(http.MethodGet, "/users/0", nil)
	rec := httptest.NewRecorder()
	router.Engine().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status":404,"message":"user not found"}`, rec.Body.String())
}

func TestGinRouter_RendersElement(t *testing.T) {
	app, router := newGinApp(t)
	require.NoError(t, app.Bootstrap())

	req := httptest.NewRequest(http.MethodGet, "/users/home", nil)
	rec := httptest.NewRecorder()
	router.Engine().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<h1>welcome</h1>", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestGinRouter_MethodNotAllowed(t *testing.T) {
	app, router := newGinApp(t)
	require.NoError(t, app.Bootstrap())

	req := httptest.NewRequest(http.MethodDelete, "/users/search", nil)
	rec := httptest.NewRecorder()
	router.Engine().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
