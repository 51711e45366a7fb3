package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/argkit/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("name", "chunker"),
			validator.MinNum("depth", 3, 1),
		)
		assert.NoError(t, err)
	})

	t.Run("aggregates all failures", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("name", ""),
			validator.MaxNum("depth", 100, 10),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.True(t, verrs.Has("name"))
		assert.True(t, verrs.Has("depth"))
		assert.Equal(t, []string{"field is required"}, verrs.Get("name"))
	})

	t.Run("error message joins field failures", func(t *testing.T) {
		err := validator.Apply(validator.RequiredString("name", ""))
		require.Error(t, err)
		assert.Equal(t, "validation failed: name: field is required", err.Error())
	})

	t.Run("no rules returns nil", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})
}

func TestValidationErrors(t *testing.T) {
	t.Run("fields deduplicates", func(t *testing.T) {
		var verrs validator.ValidationErrors
		verrs.Add(validator.ValidationError{Field: "a", Message: "first", Kind: validator.ValueError})
		verrs.Add(validator.ValidationError{Field: "a", Message: "second", Kind: validator.ValueError})
		verrs.Add(validator.ValidationError{Field: "b", Message: "third", Kind: validator.TypeError})

		assert.Equal(t, []string{"a", "b"}, verrs.Fields())
		assert.Equal(t, []string{"first", "second"}, verrs.Get("a"))
	})

	t.Run("has kind", func(t *testing.T) {
		verrs := validator.ValidationErrors{
			{Field: "a", Message: "bad type", Kind: validator.TypeError},
		}
		assert.True(t, verrs.HasKind(validator.TypeError))
		assert.False(t, verrs.HasKind(validator.ValueError))
	})

	t.Run("empty collection reports generic message", func(t *testing.T) {
		var verrs validator.ValidationErrors
		assert.True(t, verrs.IsEmpty())
		assert.Equal(t, "validation failed", verrs.Error())
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("unrelated error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
		assert.False(t, validator.IsValidationError(errors.New("boom")))
	})

	t.Run("wrapped validation errors", func(t *testing.T) {
		err := validator.Apply(validator.RequiredString("name", ""))
		wrapped := fmt.Errorf("loading config: %w", err)
		assert.True(t, validator.IsValidationError(wrapped))
		assert.Len(t, validator.ExtractValidationErrors(wrapped), 1)
	})
}
