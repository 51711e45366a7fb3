package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/argkit/pkg/validator"
)

func TestRequiredString(t *testing.T) {
	t.Run("passes for non-empty string", func(t *testing.T) {
		assert.True(t, validator.RequiredString("name", "chunker").Check())
	})

	t.Run("fails for whitespace-only string", func(t *testing.T) {
		rule := validator.RequiredString("name", "   ")
		assert.False(t, rule.Check())
		assert.Equal(t, "field is required", rule.Error.Message)
	})
}

func TestLenBounds(t *testing.T) {
	t.Run("min length is inclusive", func(t *testing.T) {
		assert.True(t, validator.MinLen("name", "12345", 5).Check())
		assert.False(t, validator.MinLen("name", "1234", 5).Check())
	})

	t.Run("max length is exclusive", func(t *testing.T) {
		assert.False(t, validator.MaxLen("name", "12345", 5).Check())
		assert.True(t, validator.MaxLen("name", "1234", 5).Check())
	})
}

func TestNumBounds(t *testing.T) {
	t.Run("min is inclusive", func(t *testing.T) {
		assert.True(t, validator.Min("depth", 1, 1).Check())
		assert.False(t, validator.Min("depth", 0, 1).Check())
	})

	t.Run("max is exclusive", func(t *testing.T) {
		assert.False(t, validator.Max("depth", 10, 10).Check())
		assert.True(t, validator.Max("depth", 9, 10).Check())
	})

	t.Run("between combines both bounds", func(t *testing.T) {
		assert.True(t, validator.BetweenNum("size", 50.0, 1.0, 100.0).Check())
		assert.False(t, validator.BetweenNum("size", 100.0, 1.0, 100.0).Check())
	})
}
