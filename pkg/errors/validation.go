package errors

import (
	"strings"
	"unicode"
)

// ValidateBuildingName validates a building name for use in labels and
// output file names. The rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences
//   - Maximum length of 128 characters
func ValidateBuildingName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidParams, "building name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidParams, "building name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidParams, "building name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidParams, "building name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateDimension checks that a real-world dimension is positive and finite.
// The label names the dimension in the error message ("width", "depth", ...).
func ValidateDimension(label string, v float64) error {
	if v != v { // NaN
		return New(ErrCodeInvalidGeometry, "%s is not a number", label)
	}
	if v <= 0 {
		return New(ErrCodeInvalidGeometry, "%s must be positive, got %g", label, v)
	}
	return nil
}

// ValidatePitch checks that a roof pitch is within [0, 90) degrees.
// A 90 degree pitch produces an unbounded slope and is rejected.
func ValidatePitch(degrees float64) error {
	if degrees != degrees {
		return New(ErrCodeInvalidGeometry, "roof pitch is not a number")
	}
	if degrees < 0 || degrees >= 90 {
		return New(ErrCodeInvalidGeometry, "roof pitch must be in [0, 90) degrees, got %g", degrees)
	}
	return nil
}
