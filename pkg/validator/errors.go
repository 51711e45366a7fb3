package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidType is returned when a value's runtime kind is not among the accepted kinds.
	ErrInvalidType = errors.New("invalid type")

	// ErrInvalidValue is returned when a value fails an existence or pattern check.
	ErrInvalidValue = errors.New("invalid value")

	// ErrOutOfRange is returned when a magnitude is outside the allowed range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrPathTooLong is returned when a path exceeds the maximum allowed length.
	ErrPathTooLong = errors.New("path too long")
)
