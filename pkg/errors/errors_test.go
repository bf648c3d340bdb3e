package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidK, "k must be >= 1, got %d", 0)

	if err.Code != ErrCodeInvalidK {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidK)
	}

	if err.Message != "k must be >= 1, got 0" {
		t.Errorf("Message = %v, want %v", err.Message, "k must be >= 1, got 0")
	}

	expected := "INVALID_K: k must be >= 1, got 0"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("duplicate edge")
	err := Wrap(ErrCodeDuplicateEdge, cause, "edge 1-2")

	if err.Code != ErrCodeDuplicateEdge {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeDuplicateEdge)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

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
			err:      New(ErrCodeEmptyGraph, "test"),
			code:     ErrCodeEmptyGraph,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeEmptyGraph, "test"),
			code:     ErrCodeInvalidK,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInvalidInput, New(ErrCodeDuplicateVertex, "inner"), "outer"),
			code:     ErrCodeInvalidInput,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
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
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeUnknownVertex, "test"), ErrCodeUnknownVertex},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFamilies(t *testing.T) {
	tests := []struct {
		code             Code
		wantStructural   bool
		wantPrecondition bool
	}{
		{ErrCodeDuplicateVertex, true, false},
		{ErrCodeDuplicateEdge, true, false},
		{ErrCodeUnknownVertex, true, false},
		{ErrCodeSelfLoop, true, false},
		{ErrCodeInvalidVertexID, true, false},
		{ErrCodeEmptyGraph, false, true},
		{ErrCodeInvalidK, false, true},
		{ErrCodeInvalidBudget, false, true},
		{ErrCodeUnknownStrategy, false, true},
		{ErrCodeInvalidConfig, false, false},
		{ErrCodeInternal, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := Wrap(ErrCodeInvalidInput, New(tt.code, "x"), "outer")
			// The outermost code wins for family checks.
			if IsStructural(err) || IsPrecondition(err) {
				t.Errorf("outer INVALID_INPUT should not belong to a family")
			}

			err = New(tt.code, "x")
			if got := IsStructural(err); got != tt.wantStructural {
				t.Errorf("IsStructural() = %v, want %v", got, tt.wantStructural)
			}
			if got := IsPrecondition(err); got != tt.wantPrecondition {
				t.Errorf("IsPrecondition() = %v, want %v", got, tt.wantPrecondition)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeInvalidInput, "friendly message"), "friendly message"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}
