package aureolin

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceString(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		target reflect.Type
		want   any
	}{
		{"string", "hello", reflect.TypeOf(""), "hello"},
		{"int", "42", reflect.TypeOf(0), 42},
		{"int64", "-7", reflect.TypeOf(int64(0)), int64(-7)},
		{"uint", "7", reflect.TypeOf(uint(0)), uint(7)},
		{"float64", "3.14", reflect.TypeOf(float64(0)), 3.14},
		{"float32", "1.5", reflect.TypeOf(float32(0)), float32(1.5)},
		{"bool true", "true", reflect.TypeOf(false), true},
		{"bool one", "1", reflect.TypeOf(false), true},
		{"empty int", "", reflect.TypeOf(0), 0},
		{"empty bool", "", reflect.TypeOf(false), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coerceString(tt.value, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Interface())
		})
	}
}

func TestCoerceString_UUID(t *testing.T) {
	id := uuid.New()
	got, err := coerceString(id.String(), reflect.TypeOf(uuid.UUID{}))
	require.NoError(t, err)
	assert.Equal(t, id, got.Interface())

	_, err = coerceString("not-a-uuid", reflect.TypeOf(uuid.UUID{}))
	assert.Error(t, err)
}

func TestCoerceString_Invalid(t *testing.T) {
	_, err := coerceString("abc", reflect.TypeOf(0))
	assert.Error(t, err)

	_, err = coerceString("abc", reflect.TypeOf(false))
	assert.Error(t, err)

	_, err = coerceString("x", reflect.TypeOf(struct{}{}))
	assert.Error(t, err)
}

func TestCoerceValue(t *testing.T) {
	got, err := coerceValue(42, reflect.TypeOf(0))
	require.NoError(t, err)
	assert.Equal(t, 42, got.Interface())

	// nil becomes the zero value.
	got, err = coerceValue(nil, reflect.TypeOf(""))
	require.NoError(t, err)
	assert.Equal(t, "", got.Interface())

	// convertible types pass through a conversion.
	got, err = coerceValue(42, reflect.TypeOf(int64(0)))
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.Interface())

	_, err = coerceValue("nope", reflect.TypeOf(struct{ X int }{}))
	assert.Error(t, err)
}
