package sanitizer

import (
	"regexp"
	"strings"
	"unicode"
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// RemoveNullBytes removes null bytes that could cause issues in C-based systems.
func RemoveNullBytes(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

// RemoveControlSequences removes ANSI escape sequences and other control characters.
func RemoveControlSequences(s string) string {
	result := ansiRegex.ReplaceAllString(s, "")

	// Remove other control characters except common ones
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, result)
}

// LimitLength truncates input to at most maxLength runes.
func LimitLength(s string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}

	return string(runes[:maxLength])
}
