package sanitizer

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	traversalRegex   = regexp.MustCompile(`\.\.[\\/]`)
	driveLetterRegex = regexp.MustCompile(`^[a-zA-Z]:`)
)

// PreventPathTraversal removes path traversal attempts (../ and ..\).
func PreventPathTraversal(path string) string {
	result := traversalRegex.ReplaceAllString(path, "")

	// Remove any remaining .. at the end
	return strings.ReplaceAll(result, "..", "")
}

// SanitizePath cleans and normalizes file paths to prevent directory
// traversal. The result is always a relative path with forward slashes and no
// leading separator, safe to join under a trusted base directory.
func SanitizePath(path string) string {
	cleaned := filepath.Clean(path)

	cleaned = PreventPathTraversal(cleaned)

	// Remove any drive letters on Windows (C:, D:, etc.)
	cleaned = driveLetterRegex.ReplaceAllString(cleaned, "")

	cleaned = strings.TrimPrefix(cleaned, "/")
	cleaned = strings.TrimPrefix(cleaned, "\\")

	return filepath.ToSlash(cleaned)
}
