package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxVertexIDLength bounds identifiers so they stay printable in DOT labels and tables.
const maxVertexIDLength = 256

// ValidateVertexID validates a caller-assigned vertex identifier.
//
// The rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters (they break DOT and terminal output)
//   - Maximum length of 256 characters
func ValidateVertexID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidVertexID, "vertex id cannot be empty")
	}

	if len(id) > maxVertexIDLength {
		return New(ErrCodeInvalidVertexID, "vertex id too long (max %d characters)", maxVertexIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidVertexID, "vertex id contains invalid control characters")
		}
	}

	return nil
}

// hexColorRegex matches #RGB and #RRGGBB colors.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// ValidateHexColor validates a palette color written as #RGB or #RRGGBB.
func ValidateHexColor(color string) error {
	if color == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}
	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidColor, "invalid hex color: %q", color)
	}
	return nil
}

// ValidatePath validates an output file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidPath, "path must name a file, not a directory")
	}

	return nil
}
