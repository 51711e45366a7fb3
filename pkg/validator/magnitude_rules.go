package validator

import (
	"fmt"
	"math"
	"reflect"
)

// NoBound disables the corresponding side of a magnitude range check.
const NoBound = math.MinInt

// Magnitude computes the quantity used for range checks on a dynamically
// typed value: the length for sized values (strings, slices, maps), the
// numeric value itself for scalars. The second return value is false when the
// value is nil or has no measurable magnitude.
func Magnitude(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return float64(v.Len()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return 0, false
		}
		return Magnitude(v.Elem().Interface())
	default:
		return 0, false
	}
}

// MagnitudeBetween validates that a value's magnitude is within [min, max).
// The lower bound is inclusive, the upper bound is exclusive. Either bound can
// be disabled with NoBound. A nil value passes: absence skips range checks,
// kind checks decide whether absence is allowed at all.
func MagnitudeBetween(field string, value any, min, max int) Rule {
	return Rule{
		Check: func() bool {
			num, ok := Magnitude(value)
			if !ok {
				return true
			}
			if min != NoBound && num < float64(min) {
				return false
			}
			if max != NoBound && num >= float64(max) {
				return false
			}
			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: magnitudeMessage(value, min, max),
			Kind:    ValueError,
		},
	}
}

// MagnitudeMin validates that a value's magnitude is at least min.
func MagnitudeMin(field string, value any, min int) Rule {
	return MagnitudeBetween(field, value, min, NoBound)
}

// MagnitudeMax validates that a value's magnitude is strictly less than max.
func MagnitudeMax(field string, value any, max int) Rule {
	return MagnitudeBetween(field, value, NoBound, max)
}

func magnitudeMessage(value any, min, max int) string {
	noun := "value"
	if v := reflect.ValueOf(value); value != nil {
		switch v.Kind() {
		case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
			noun = "length"
		}
	}

	switch {
	case min != NoBound && max != NoBound:
		return fmt.Sprintf("%s must be greater or equal to %d and less than %d", noun, min, max)
	case min != NoBound:
		return fmt.Sprintf("%s must be greater or equal to %d", noun, min)
	case max != NoBound:
		return fmt.Sprintf("%s must be less than %d", noun, max)
	default:
		return noun + " must be in range"
	}
}
