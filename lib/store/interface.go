package store

import (
	"errors"
	"fmt"
)

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is a custom error type that wraps a return code (of type RetCode)
// and an error message. Mutation operations return nil when they were applied
// and an *Error otherwise.
type Error struct {
	Code RetCode // The return code
	Msg  string  // The error message.
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Msg
}

// Is reports whether target is an *Error with the same code, so callers can
// write errors.Is(err, store.ErrNotFound).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// NewError creates a new Error with the given code and message.
func NewError(code RetCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// Errorf creates a new Error with the given code and a formatted message.
func Errorf(code RetCode, format string, args ...any) *Error {
	return NewError(code, fmt.Sprintf(format, args...))
}

// Sentinels for errors.Is comparisons. Only the code is compared.
var (
	ErrNotFound         = NewError(RetCNotFound, "not found")
	ErrValidationFailed = NewError(RetCValidationFailed, "validation failed")
	ErrStoreUnavailable = NewError(RetCStoreUnavailable, "store unavailable")
)

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCApplied          RetCode = iota // 0: Mutation was applied.
	RetCNotFound                        // 1: Referenced student, course, exam, question or account is absent.
	RetCValidationFailed                // 2: Input was rejected, nothing was changed.
	RetCStoreUnavailable                // 3: A store file could not be read or written.
	RetCInternalError                   // 4: Anything else.
)

// String returns the outcome name of the code
func (c RetCode) String() string {
	switch c {
	case RetCApplied:
		return "applied"
	case RetCNotFound:
		return "not-found"
	case RetCValidationFailed:
		return "validation-failed"
	case RetCStoreUnavailable:
		return "store-unavailable"
	default:
		return "internal-error"
	}
}

// CodeOf maps an error returned by an operation to its return code.
// nil maps to RetCApplied, errors that are not an *Error to RetCInternalError.
func CodeOf(err error) RetCode {
	if err == nil {
		return RetCApplied
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return RetCInternalError
}
