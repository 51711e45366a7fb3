package validator

import "fmt"

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be greater or equal to %v", min),
			Kind:    ValueError,
		},
	}
}

// MaxNum validates that a numeric value is strictly less than the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value < max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be less than %v", max),
			Kind:    ValueError,
		},
	}
}

// BetweenNum validates that a numeric value is within [min, max).
func BetweenNum[T Numeric](field string, value T, min, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value < max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be greater or equal to %v and less than %v", min, max),
			Kind:    ValueError,
		},
	}
}

// Convenience aliases for common numeric validation cases

func Min[T Numeric](field string, value T, min T) Rule {
	return MinNum(field, value, min)
}

func Max[T Numeric](field string, value T, max T) Rule {
	return MaxNum(field, value, max)
}
