package validator

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind enumerates the runtime kinds a dynamically typed value may be checked
// against. It replaces the "type or tuple of types" style of check with an
// explicit set of accepted kinds.
type Kind string

const (
	KindString Kind = "string"
	KindInt    Kind = "int"
	KindUint   Kind = "uint"
	KindFloat  Kind = "float"
	KindBool   Kind = "bool"
	KindSlice  Kind = "slice"
	KindMap    Kind = "map"
	// KindNil accepts an absent value. Include it in the accepted set to
	// allow nil arguments, mirroring optional CLI parameters.
	KindNil Kind = "nil"
)

// KindOf reports the Kind of a dynamically typed value.
func KindOf(value any) Kind {
	if value == nil {
		return KindNil
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String:
		return KindString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindUint
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.Bool:
		return KindBool
	case reflect.Slice, reflect.Array:
		return KindSlice
	case reflect.Map:
		return KindMap
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return KindNil
		}
		return KindOf(v.Elem().Interface())
	default:
		return Kind(v.Kind().String())
	}
}

// OneOfKind validates that a value's runtime kind is one of the accepted
// kinds. The failure message names every accepted kind.
func OneOfKind(field string, value any, kinds ...Kind) Rule {
	return Rule{
		Check: func() bool {
			actual := KindOf(value)
			for _, k := range kinds {
				if actual == k {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("expected type %s", joinKinds(kinds)),
			Kind:    TypeError,
		},
	}
}

func joinKinds(kinds []Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, " or ")
}
