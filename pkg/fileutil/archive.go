package fileutil

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/argkit/pkg/sanitizer"
)

// Unzip extracts every entry of the zip archive at src into destDir,
// preserving the archive's directory structure. Entry names are sanitized and
// resolved paths are verified to stay within destDir, so hostile archives
// cannot write outside the destination (zip-slip). Returns the paths of the
// extracted regular files.
func Unzip(ctx context.Context, src, destDir string) ([]string, error) {
	reader, err := zip.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToOpenArchive, err)
	}
	defer func() { _ = reader.Close() }()

	absDest, err := filepath.Abs(destDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}
	if err := os.MkdirAll(absDest, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	var extracted []string
	for _, entry := range reader.File {
		// Allow cancellation between entries of large archives.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		target, err := resolveEntryPath(absDest, entry.Name)
		if err != nil {
			return nil, err
		}

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
			}
			continue
		}

		if err := extractEntry(entry, target); err != nil {
			return nil, err
		}
		extracted = append(extracted, target)
	}

	return extracted, nil
}

// resolveEntryPath sanitizes an archive entry name and anchors it under
// destDir, rejecting entries that would escape it.
func resolveEntryPath(destDir, name string) (string, error) {
	rel := sanitizer.SanitizePath(name)
	if rel == "" || rel == "." {
		return "", fmt.Errorf("%w: %q", ErrInvalidArchivePath, name)
	}

	target := filepath.Join(destDir, filepath.FromSlash(rel))
	if !strings.HasPrefix(target, destDir+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidArchivePath, name)
	}

	return target, nil
}

func extractEntry(entry *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, entry.Mode().Perm()|0o200)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToCreateFile, err)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(target) // Clean up partial file
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}

	return nil
}
