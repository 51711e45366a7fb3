package fileutil_test

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/argkit/pkg/fileutil"
)

// writeZip builds a zip archive from a map of entry name to content.
func writeZip(t *testing.T, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "archive.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	w := zip.NewWriter(f)
	for name, content := range entries {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return path
}

func TestUnzip(t *testing.T) {
	t.Run("extracts files preserving structure", func(t *testing.T) {
		src := writeZip(t, map[string]string{
			"train.txt":        "train data",
			"nested/test.txt":  "test data",
			"nested/dev/x.txt": "dev data",
		})

		dest := t.TempDir()
		files, err := fileutil.Unzip(context.Background(), src, dest)
		require.NoError(t, err)
		assert.Len(t, files, 3)

		got, err := os.ReadFile(filepath.Join(dest, "nested", "test.txt"))
		require.NoError(t, err)
		assert.Equal(t, "test data", string(got))
	})

	t.Run("neutralizes traversal entry names", func(t *testing.T) {
		src := writeZip(t, map[string]string{
			"../../escape.txt": "evil",
		})

		dest := t.TempDir()
		files, err := fileutil.Unzip(context.Background(), src, dest)
		require.NoError(t, err)
		require.Len(t, files, 1)

		// The sanitized entry lands inside the destination.
		assert.Equal(t, filepath.Join(dest, "escape.txt"), files[0])
		_, err = os.Stat(filepath.Join(filepath.Dir(filepath.Dir(dest)), "escape.txt"))
		assert.True(t, os.IsNotExist(err), "nothing may be written outside the destination")
	})

	t.Run("creates missing destination directory", func(t *testing.T) {
		src := writeZip(t, map[string]string{"a.txt": "a"})

		dest := filepath.Join(t.TempDir(), "out", "deeper")
		_, err := fileutil.Unzip(context.Background(), src, dest)
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dest, "a.txt"))
	})

	t.Run("fails on a missing archive", func(t *testing.T) {
		_, err := fileutil.Unzip(context.Background(), "/nonexistent.zip", t.TempDir())
		assert.ErrorIs(t, err, fileutil.ErrFailedToOpenArchive)
	})

	t.Run("canceled context stops extraction", func(t *testing.T) {
		src := writeZip(t, map[string]string{"a.txt": "a"})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fileutil.Unzip(ctx, src, t.TempDir())
		assert.ErrorIs(t, err, context.Canceled)
	})
}
