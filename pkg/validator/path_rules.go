package validator

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// maxPathLen bounds accepted path strings. Paths must be strictly shorter.
const maxPathLen = 255

// ExistingFile validates that a string points to an existing regular file.
func ExistingFile(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := ValidateExistingFile(value)
			return err == nil
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s does not exist", value),
			Kind:    ValueError,
		},
	}
}

// ExistingDirectory validates that a string points to an existing directory.
func ExistingDirectory(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := ValidateExistingDirectory(value)
			return err == nil
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s does not exist", value),
			Kind:    ValueError,
		},
	}
}

// ValidateExistingFile validates that the argument is a bounded path string
// naming an existing regular file and returns it unchanged.
func ValidateExistingFile(value string) (string, error) {
	if len(value) >= maxPathLen {
		return "", fmt.Errorf("%w: must be less than %d characters", ErrPathTooLong, maxPathLen)
	}

	info, err := os.Stat(value)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s does not exist", ErrInvalidValue, value)
	}

	return value, nil
}

// ValidateExistingDirectory resolves the argument to an absolute path,
// validates it names an existing directory, and returns the absolute path.
func ValidateExistingDirectory(value string) (string, error) {
	abs, err := filepath.Abs(value)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	if len(abs) >= maxPathLen {
		return "", fmt.Errorf("%w: must be less than %d characters", ErrPathTooLong, maxPathLen)
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s does not exist", ErrInvalidValue, abs)
	}

	return abs, nil
}

// ValidateParentExists resolves the argument to an absolute path and
// validates that its parent directory exists. The absolute path is returned
// so it can be used to create the file later.
func ValidateParentExists(value string) (string, error) {
	abs, err := filepath.Abs(value)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}

	if _, err := ValidateExistingDirectory(filepath.Dir(abs)); err != nil {
		return "", fmt.Errorf("parent of %s: %w", abs, err)
	}

	return abs, nil
}

// SanitizePath neutralizes traversal components in an untrusted path fragment
// by rooting it at "/" and stripping the leading separator. The result is
// always a relative path with no leading ".." components, and re-sanitizing
// an already sanitized path returns it unchanged.
func SanitizePath(value string) (string, error) {
	s := strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(value)), "/")
	if len(s) >= maxPathLen {
		return "", fmt.Errorf("%w: must be less than %d characters", ErrPathTooLong, maxPathLen)
	}
	return s, nil
}
