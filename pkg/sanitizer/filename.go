package sanitizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// filenameReplacer maps path separators and shell-hostile characters to
// underscores so the result is safe on every common filesystem.
var filenameReplacer = strings.NewReplacer(
	"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
	"\"", "_", "<", "_", ">", "_", "|", "_",
	"\x00", "_", "\r", "_", "\n", "_", "\t", "_",
)

// Filename makes a filename safe by normalizing Unicode to NFC, replacing
// dangerous characters, and bounding the length. An empty result falls back
// to "file" so callers always get a usable name.
func Filename(name string) string {
	result := norm.NFC.String(name)
	result = RemoveControlSequences(result)
	result = filenameReplacer.Replace(result)

	result = strings.Trim(result, " .")
	result = LimitLength(result, 255)

	if result == "" {
		result = "file"
	}

	return result
}
