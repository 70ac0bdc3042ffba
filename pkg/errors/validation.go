package errors

import (
	"math"
	"strings"
	"unicode"
)

// Frame size limits accepted from untrusted input (CLI flags, HTTP bodies).
const (
	MinFrameSize = 16.0
	MaxFrameSize = 8192.0
)

// ValidateFrameSize checks that a requested viewport is finite and within
// [MinFrameSize, MaxFrameSize] on both dimensions.
func ValidateFrameSize(width, height float64) error {
	for _, d := range []struct {
		name string
		v    float64
	}{{"width", width}, {"height", height}} {
		if math.IsNaN(d.v) || math.IsInf(d.v, 0) {
			return New(ErrCodeInvalidInput, "%s must be a finite number", d.name)
		}
		if d.v < MinFrameSize || d.v > MaxFrameSize {
			return New(ErrCodeInvalidInput, "%s %.0f out of range (%.0f-%.0f)", d.name, d.v, MinFrameSize, MaxFrameSize)
		}
	}
	return nil
}

// ValidateLabel validates a caller-supplied chart or axis label.
// Labels end up as SVG text content, so control characters other than
// tabs are rejected and length is bounded.
func ValidateLabel(label string) error {
	const maxLabelLength = 256
	if len(label) > maxLabelLength {
		return New(ErrCodeInvalidSpec, "label too long (max %d characters)", maxLabelLength)
	}
	for _, r := range label {
		if r != '\t' && unicode.IsControl(r) {
			return New(ErrCodeInvalidSpec, "label contains invalid control characters")
		}
	}
	return nil
}

// ValidatePath validates an output file path for safety.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
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

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
