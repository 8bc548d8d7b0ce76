package errors

import (
	"strings"
	"unicode"
)

// Canvas limits accepted for a room graph.
const (
	MinCanvas = 40
	MaxCanvas = 60
)

// maxRoomIDLength bounds room identifiers; they end up in cache keys and logs.
const maxRoomIDLength = 128

// ValidateRoomID validates a room identifier.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters
//   - No surrounding whitespace
//   - Maximum length of 128 characters
func ValidateRoomID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidRoom, "room id cannot be empty")
	}
	if len(id) > maxRoomIDLength {
		return New(ErrCodeInvalidRoom, "room id too long (max %d characters)", maxRoomIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidRoom, "room id %q contains control characters", id)
		}
	}
	if strings.TrimSpace(id) != id {
		return New(ErrCodeInvalidRoom, "room id %q has surrounding whitespace", id)
	}
	return nil
}

// ValidateCanvas checks that a canvas size lies within [MinCanvas, MaxCanvas] on both axes.
func ValidateCanvas(width, height int) error {
	if width < MinCanvas || width > MaxCanvas {
		return New(ErrCodeInvalidCanvas, "canvas width %d out of range [%d, %d]", width, MinCanvas, MaxCanvas)
	}
	if height < MinCanvas || height > MaxCanvas {
		return New(ErrCodeInvalidCanvas, "canvas height %d out of range [%d, %d]", height, MinCanvas, MaxCanvas)
	}
	return nil
}

// ValidateDimension checks an optional explicit room dimension.
// A nil value means "derive from the room type" and is always valid.
func ValidateDimension(roomID, field string, v *int) error {
	if v == nil {
		return nil
	}
	if *v <= 0 {
		return New(ErrCodeInvalidDimension, "room %q: %s must be a positive integer, got %d", roomID, field, *v)
	}
	return nil
}

// ValidatePath validates a relative output path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}
	return nil
}
