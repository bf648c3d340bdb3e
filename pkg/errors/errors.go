// Package errors provides structured error types for chromatic.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Families
//
// Codes are grouped into two families that callers usually branch on:
//
//   - Structural: the graph itself is malformed (duplicate vertex, duplicate
//     edge, self-loop, edge referencing an unknown vertex). See [IsStructural].
//   - Precondition: a search was asked to run on degenerate input (empty graph,
//     k < 1, zero iteration budget). See [IsPrecondition].
//
// Exhausting an iteration budget is not an error. Searches report it through
// their result's Success flag.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidK, "k must be >= 1, got %d", k)
//	if errors.Is(err, errors.ErrCodeInvalidK) {
//	    // Handle precondition failure
//	}
//
//	// Wrap a sentinel so both code and sentinel checks work
//	err := errors.Wrap(errors.ErrCodeDuplicateEdge, graph.ErrDuplicateEdge, "edge %s-%s", a, b)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Structural errors
	ErrCodeDuplicateVertex Code = "DUPLICATE_VERTEX"
	ErrCodeDuplicateEdge   Code = "DUPLICATE_EDGE"
	ErrCodeUnknownVertex   Code = "UNKNOWN_VERTEX"
	ErrCodeSelfLoop        Code = "SELF_LOOP"
	ErrCodeInvalidVertexID Code = "INVALID_VERTEX_ID"

	// Precondition errors
	ErrCodeEmptyGraph      Code = "EMPTY_GRAPH"
	ErrCodeInvalidK        Code = "INVALID_K"
	ErrCodeInvalidBudget   Code = "INVALID_BUDGET"
	ErrCodeInvalidRange    Code = "INVALID_RANGE"
	ErrCodeUnknownStrategy Code = "UNKNOWN_STRATEGY"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidColor  Code = "INVALID_COLOR"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeMissingTool  Code = "MISSING_TOOL"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

var structuralCodes = map[Code]bool{
	ErrCodeDuplicateVertex: true,
	ErrCodeDuplicateEdge:   true,
	ErrCodeUnknownVertex:   true,
	ErrCodeSelfLoop:        true,
	ErrCodeInvalidVertexID: true,
}

var preconditionCodes = map[Code]bool{
	ErrCodeEmptyGraph:      true,
	ErrCodeInvalidK:        true,
	ErrCodeInvalidBudget:   true,
	ErrCodeInvalidRange:    true,
	ErrCodeUnknownStrategy: true,
}

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsStructural reports whether err describes a malformed graph.
func IsStructural(err error) bool {
	return structuralCodes[GetCode(err)]
}

// IsPrecondition reports whether err describes a search rejected before it started.
func IsPrecondition(err error) bool {
	return preconditionCodes[GetCode(err)]
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
