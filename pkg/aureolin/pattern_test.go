package aureolin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePattern_Static(t *testing.T) {
	p, err := ParsePattern("/users/list")
	require.NoError(t, err)

	segments := p.Segments()
	require.Len(t, segments, 1)
	assert.Equal(t, StaticSegment, segments[0].Kind)
	assert.Equal(t, "/users/list", segments[0].Value)
}

func TestParsePattern_TypedAndUntypedParams(t *testing.T) {
	p, err := ParsePattern("/users/{id:int}/posts/{slug}")
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "slug"}, p.ParamNames())
	assert.Equal(t, map[string]string{"id": "int", "slug": "string"}, p.ParamTypes())

	segments := p.Segments()
	require.Len(t, segments, 4)
	assert.Equal(t, ParamSegment, segments[1].Kind)
	assert.Equal(t, "id", segments[1].Value)
	assert.Equal(t, "int", segments[1].ParamType)
	assert.Equal(t, ParamSegment, segments[3].Kind)
	assert.Equal(t, "", segments[3].ParamType)
}

func TestParsePattern_Wildcard(t *testing.T) {
	p, err := ParsePattern("/files/{*}")
	require.NoError(t, err)

	segments := p.Segments()
	require.Len(t, segments, 2)
	assert.Equal(t, WildcardSegment, segments[1].Kind)
}

func TestParsePattern_Malformed(t *testing.T) {
	for _, raw := range []string{"/users/{id", "/users/{}", "/users/{id:}", "/users/id}"} {
		_, err := ParsePattern(raw)
		assert.Error(t, err, "pattern %q should not parse", raw)
	}
}

func TestParsePattern_EmptyDefaultsToRoot(t *testing.T) {
	p, err := ParsePattern("")
	require.NoError(t, err)
	assert.Equal(t, "/", p.Raw())
}

func TestRoutePattern_Convert(t *testing.T) {
	p := MustPattern("/users/{id:int}/files/{*}")

	echoPath := p.Convert(func(name string) string { return ":" + name }, "*")
	assert.Equal(t, "/users/:id/files/*", echoPath)

	ginPath := p.Convert(func(name string) string { return ":" + name }, "*path")
	assert.Equal(t, "/users/:id/files/*path", ginPath)
}

func TestJoinPath(t *testing.T) {
	tests := []struct {
		base, sub, want string
	}{
		{"/users", "/{id}", "/users/{id}"},
		{"/users", "/", "/users"},
		{"/", "/", "/"},
		{"", "", "/"},
		{"/api/v1", "/health/", "/api/v1/health"},
		{"/users", "", "/users"},
	}
	for _, tt := range tests {
		got := joinPath(tt.base, tt.sub)
		assert.Equal(t, tt.want, got, "joinPath(%q, %q)", tt.base, tt.sub)

		// Effective paths never end with a separator unless they are just "/".
		if got != "/" {
			assert.False(t, strings.HasSuffix(got, "/"))
		}
	}
}
