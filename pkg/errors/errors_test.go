package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidGeometry, "wall width must be positive, got %g", -2.0)

	if err.Code != ErrCodeInvalidGeometry {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidGeometry)
	}

	if err.Message != "wall width must be positive, got -2" {
		t.Errorf("Message = %v, want %v", err.Message, "wall width must be positive, got -2")
	}

	expected := "INVALID_GEOMETRY: wall width must be positive, got -2"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidParams, cause, "failed to load building")

	if err.Code != ErrCodeInvalidParams {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidParams)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeDegenerateEdge, "test"),
			code:     ErrCodeDegenerateEdge,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeDegenerateEdge, "test"),
			code:     ErrCodeEmptyPattern,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInternal, New(ErrCodeInvalidGeometry, "inner"), "outer"),
			code:     ErrCodeInternal,
			expected: true,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			code:     ErrCodeInternal,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeEmptyPattern, "nothing to place")); got != ErrCodeEmptyPattern {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeEmptyPattern)
	}
	if got := GetCode(errors.New("plain")); got != Code("") {
		t.Errorf("GetCode() = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeUnsupportedJoint, "miter joints need a rigid material")
	if got := UserMessage(err); got != "miter joints need a rigid material" {
		t.Errorf("UserMessage() = %v", got)
	}
	plain := errors.New("plain message")
	if got := UserMessage(plain); got != "plain message" {
		t.Errorf("UserMessage() = %v", got)
	}
}
