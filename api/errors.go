// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-vec library.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrInvalidCapacity  = fmt.Errorf("invalid capacity")
	ErrCapacityOverflow = fmt.Errorf("capacity overflow")
	ErrInvalidOffset    = fmt.Errorf("offset out of range")
	ErrPoolClosed       = fmt.Errorf("block pool is closed")
	ErrNotSupported     = fmt.Errorf("operation not supported")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidCapacity
	ErrCodeCapacityOverflow
	ErrCodeInvalidOffset
	ErrCodePoolClosed
	ErrCodeElementOp
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// WithCause records the error that triggered this one.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}
