// Package errors gives gridda failures a machine-readable [Code].
//
// The CLI prints [UserMessage] and the preview server maps codes to HTTP
// statuses, so every error that crosses a package boundary should be built
// with [New] or [Wrap]. Codes starting with INVALID_ mean the caller can
// retry with corrected input; see [IsInput].
//
//	if errors.Is(err, errors.ErrCodeInvalidPitch) {
//		// offer the supported pitches
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code identifies a class of failure.
type Code string

const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPaper  Code = "INVALID_PAPER"
	ErrCodeInvalidPitch  Code = "INVALID_PITCH"
	ErrCodeInvalidColor  Code = "INVALID_COLOR"
	ErrCodeInvalidTitle  Code = "INVALID_TITLE"

	ErrCodeCatalogMiss  Code = "CATALOG_MISS"
	ErrCodePageNotFound Code = "PAGE_NOT_FOUND"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error pairs a Code with a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an *Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is like New but records cause, which Error() appends and Unwrap
// returns.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

func as(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Is reports whether the first *Error in err's chain has code.
func Is(err error, code Code) bool {
	e, ok := as(err)
	return ok && e.Code == code
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	if e, ok := as(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage strips the code prefix and cause so the result can be shown
// as-is in the terminal or a JSON error body.
func UserMessage(err error) string {
	if e, ok := as(err); ok {
		return e.Message
	}
	return err.Error()
}

// IsInput reports whether err carries one of the INVALID_ codes.
func IsInput(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidConfig, ErrCodeInvalidFormat,
		ErrCodeInvalidPaper, ErrCodeInvalidPitch, ErrCodeInvalidColor, ErrCodeInvalidTitle:
		return true
	}
	return false
}
