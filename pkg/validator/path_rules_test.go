package validator_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/argkit/pkg/validator"
)

func TestValidateExistingFile(t *testing.T) {
	t.Run("accepts an existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "model.txt")
		require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))

		got, err := validator.ValidateExistingFile(path)
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("rejects a missing file", func(t *testing.T) {
		_, err := validator.ValidateExistingFile("/nonexistent/file.txt")
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrInvalidValue)
		assert.Contains(t, err.Error(), "/nonexistent/file.txt")
	})

	t.Run("rejects a directory", func(t *testing.T) {
		_, err := validator.ValidateExistingFile(t.TempDir())
		assert.ErrorIs(t, err, validator.ErrInvalidValue)
	})

	t.Run("rejects an overlong path", func(t *testing.T) {
		_, err := validator.ValidateExistingFile(strings.Repeat("a", 300))
		assert.ErrorIs(t, err, validator.ErrPathTooLong)
	})
}

func TestValidateExistingDirectory(t *testing.T) {
	t.Run("returns the absolute path", func(t *testing.T) {
		dir := t.TempDir()
		got, err := validator.ValidateExistingDirectory(dir)
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})

	t.Run("rejects a missing directory", func(t *testing.T) {
		_, err := validator.ValidateExistingDirectory("/nonexistent/dir")
		assert.ErrorIs(t, err, validator.ErrInvalidValue)
	})

	t.Run("rejects a regular file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file.txt")
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		_, err := validator.ValidateExistingDirectory(path)
		assert.ErrorIs(t, err, validator.ErrInvalidValue)
	})
}

func TestValidateParentExists(t *testing.T) {
	t.Run("accepts a path whose parent exists", func(t *testing.T) {
		dir := t.TempDir()
		got, err := validator.ValidateParentExists(filepath.Join(dir, "model.dat"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "model.dat"), got)
	})

	t.Run("fails loudly when the parent is missing", func(t *testing.T) {
		got, err := validator.ValidateParentExists("/nonexistent/dir/model.dat")
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrInvalidValue)
		assert.Empty(t, got)
	})
}

func TestSanitizePath(t *testing.T) {
	t.Run("neutralizes traversal components", func(t *testing.T) {
		got, err := validator.SanitizePath("../../etc/passwd")
		require.NoError(t, err)
		assert.Equal(t, "etc/passwd", got)
	})

	t.Run("strips the leading separator", func(t *testing.T) {
		got, err := validator.SanitizePath("/var/data")
		require.NoError(t, err)
		assert.Equal(t, "var/data", got)
	})

	t.Run("is idempotent", func(t *testing.T) {
		once, err := validator.SanitizePath("a/../b/./c")
		require.NoError(t, err)
		twice, err := validator.SanitizePath(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})

	t.Run("rejects an overlong result", func(t *testing.T) {
		_, err := validator.SanitizePath(strings.Repeat("a/", 200))
		assert.ErrorIs(t, err, validator.ErrPathTooLong)
	})
}

func TestExistingFileRule(t *testing.T) {
	t.Run("rule carries a value error naming the path", func(t *testing.T) {
		rule := validator.ExistingFile("embedding_model", "/nonexistent/glove.txt")
		assert.False(t, rule.Check())
		assert.Equal(t, validator.ValueError, rule.Error.Kind)
		assert.Contains(t, rule.Error.Message, "/nonexistent/glove.txt")
	})
}
