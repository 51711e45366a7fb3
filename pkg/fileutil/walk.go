package fileutil

import (
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// TextFile is a document yielded by WalkTextFiles.
type TextFile struct {
	Name    string // Base filename
	Path    string // Full path under the walked root
	Content string // File contents, assumed UTF-8
}

// WalkTextFiles iterates a directory tree and yields each regular file's name
// and contents. Files whose name starts with a dot are skipped. Errors
// (unreadable directories or files) are yielded alongside a zero TextFile so
// the caller decides whether to continue.
func WalkTextFiles(root string) iter.Seq2[TextFile, error] {
	return func(yield func(TextFile, error) bool) {
		// Walk errors are surfaced through yield, including the root error,
		// so the WalkDir return value carries nothing extra.
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if !yield(TextFile{}, err) {
					return fs.SkipAll
				}
				return nil
			}

			if d.IsDir() || strings.HasPrefix(d.Name(), ".") || !d.Type().IsRegular() {
				return nil
			}

			content, err := os.ReadFile(path)
			if err != nil {
				if !yield(TextFile{}, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)) {
					return fs.SkipAll
				}
				return nil
			}

			if !yield(TextFile{Name: d.Name(), Path: path, Content: string(content)}, nil) {
				return fs.SkipAll
			}
			return nil
		})
	}
}
