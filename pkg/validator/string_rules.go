package validator

import (
	"fmt"
	"strings"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
			Kind:    ValueError,
		},
	}
}

func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
			Kind:    ValueError,
		},
	}
}

// MaxLenString validates the string is strictly shorter than max. The upper
// bound is exclusive, matching the magnitude range convention.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) < max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be less than %d characters long", max),
			Kind:    ValueError,
		},
	}
}

// Convenience aliases for common string validation cases

func Required(field, value string) Rule {
	return RequiredString(field, value)
}

func MinLen(field, value string, min int) Rule {
	return MinLenString(field, value, min)
}

func MaxLen(field, value string, max int) Rule {
	return MaxLenString(field, value, max)
}
