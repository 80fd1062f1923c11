package aureolin

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/google/uuid"
)

var (
	uuidType    = reflect.TypeOf(uuid.UUID{})
	contextType = reflect.TypeOf((*Context)(nil)).Elem()
)

// coerceString converts a string extracted from the request (path parameter,
// query parameter or header) to the handler's declared argument type.
// Supported targets: string, bool, the int/uint/float kinds and uuid.UUID.
func coerceString(value string, target reflect.Type) (reflect.Value, error) {
	if target == uuidType {
		id, err := uuid.Parse(value)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid uuid %q: %w", value, err)
		}
		return reflect.ValueOf(id), nil
	}

	switch target.Kind() {
	case reflect.String:
		return reflect.ValueOf(value).Convert(target), nil
	case reflect.Bool:
		if value == "" {
			return reflect.Zero(target), nil
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid bool %q: %w", value, err)
		}
		return reflect.ValueOf(b).Convert(target), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if value == "" {
			return reflect.Zero(target), nil
		}
		i, err := strconv.ParseInt(value, 10, target.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid integer %q: %w", value, err)
		}
		out := reflect.New(target).Elem()
		out.SetInt(i)
		return out, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if value == "" {
			return reflect.Zero(target), nil
		}
		u, err := strconv.ParseUint(value, 10, target.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid unsigned integer %q: %w", value, err)
		}
		out := reflect.New(target).Elem()
		out.SetUint(u)
		return out, nil
	case reflect.Float32, reflect.Float64:
		if value == "" {
			return reflect.Zero(target), nil
		}
		f, err := strconv.ParseFloat(value, target.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid float %q: %w", value, err)
		}
		out := reflect.New(target).Elem()
		out.SetFloat(f)
		return out, nil
	case reflect.Interface:
		if target.NumMethod() == 0 {
			return reflect.ValueOf(value), nil
		}
	}
	return reflect.Value{}, fmt.Errorf("cannot convert %q to %s", value, target)
}

// coerceValue adapts an already-extracted value (context, custom extractor
// result) to the target argument type. A nil value yields the zero value.
func coerceValue(value any, target reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(target), nil
	}
	v := reflect.ValueOf(value)
	if v.Type().AssignableTo(target) {
		return v, nil
	}
	if v.Type().ConvertibleTo(target) {
		return v.Convert(target), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot use %T as %s", value, target)
}
