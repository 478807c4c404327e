// Package errors defines the typed failure modes of the analysis engine.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// RootNotFound indicates no project-root marker exists on any ancestor
	RootNotFound ErrorCode = "ROOT_NOT_FOUND"
	// FileNotFound indicates the target source file does not exist
	FileNotFound ErrorCode = "FILE_NOT_FOUND"
	// ParseFailed indicates the source file's syntax tree could not be built
	ParseFailed ErrorCode = "PARSE_ERROR"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// Error represents an engine error with a stable code and optional cause.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	cause   error
}

// New creates a new Error.
func New(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// ParseError carries the location of a syntax failure in a source file.
// Failures are deterministic functions of file content, so retrying one
// is pointless; the remediation is fixing or excluding the file.
type ParseError struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// NewParseError creates a ParseError for the given file and line.
func NewParseError(file string, line int, message string) *ParseError {
	return &ParseError{File: file, Line: line, Message: message}
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("[%s] syntax error in %s at line %d: %s", ParseFailed, e.File, e.Line, e.Message)
}

// RootNotFoundError creates the fatal error for a failed root search.
func RootNotFoundError(startPath string, markers []string) *Error {
	return New(RootNotFound,
		fmt.Sprintf("could not find project root starting from %s (markers searched: %v)", startPath, markers),
		nil)
}

// FileNotFoundError creates the error for a missing source file.
func FileNotFoundError(path string, cause error) *Error {
	return New(FileNotFound, fmt.Sprintf("source file not found: %s", path), cause)
}

// IsParseError reports whether err is (or wraps) a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return stderrors.As(err, &pe)
}

// AsParseError extracts a ParseError from err, if present.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if stderrors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// IsCode reports whether err carries the given stable code.
func IsCode(err error, code ErrorCode) bool {
	if code == ParseFailed && IsParseError(err) {
		return true
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code == code
	}
	return false
}
