package errors

import (
	"strings"
	"unicode"
)

// maxNameLength bounds box and sheet names used as file names and URL path
// segments.
const maxNameLength = 256

// ValidateName checks that a box or sheet name can be used as an output
// file name and a URL path segment.
//
// The rules are conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 256 characters
//
// Rendering itself accepts any string; this only guards places where a name
// becomes part of a path.
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "name contains invalid control characters")
		}
	}

	for _, pattern := range []string{"..", "/", "\\", "\x00"} {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidName, "name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateFormats checks every requested format against the valid set.
func ValidateFormats(formats []string, valid map[string]bool) error {
	if len(formats) == 0 {
		return New(ErrCodeInvalidFormat, "no output format given")
	}
	for _, f := range formats {
		if !valid[f] {
			return New(ErrCodeInvalidFormat, "invalid format: %s", f)
		}
	}
	return nil
}
