// Package domainerrors provides coded errors shared by services and transports.
// Stores return sentinel errors; services translate them into these so handlers
// can map a stable code to an HTTP status and response envelope.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code identifies the class of a domain error.
type Code string

const (
	CodeValidation        Code = "validation"
	CodeBadRequest        Code = "bad_request"
	CodeConflict          Code = "conflict"
	CodeNotFound          Code = "not_found"
	CodeAssociationFailed Code = "association_failed"
	CodeInternal          Code = "internal_error"
)

// Error is a domain error with a stable code, a human message and an optional
// name of the offending request parameter.
type Error struct {
	Code    Code
	Message string
	Param   string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NewWithParam creates a domain error that names the offending field.
func NewWithParam(code Code, message, param string) *Error {
	return &Error{Code: code, Message: message, Param: param}
}

// Wrap attaches a code and message to an underlying error, preserving the
// cause for errors.Is / errors.As chains.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// HasCode reports whether err (or anything it wraps) is a domain error with
// the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code of err, defaulting to CodeInternal for unexpected
// errors so internals never leak a specific classification.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
