package basalt

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes builder errors.
type ErrorCode string

const (
	// ErrCodeInvalidArgument indicates a malformed construction argument,
	// such as an empty table name.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// ErrCodeUnsupportedValue indicates a value outside the closed literal
	// variant set.
	ErrCodeUnsupportedValue ErrorCode = "UNSUPPORTED_VALUE"
)

// Error is a coded builder error.
//
// The taxonomy is deliberately small: only construction (New) and literal
// conversion (FromGo) can fail. Select, Filter, OrderBy, and Build accept any
// input shape and always succeed; pathological inputs produce syntactically
// valid but possibly redundant output rather than an error.
type Error struct {
	Code    ErrorCode
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvalidArgument reports whether err is an INVALID_ARGUMENT builder error.
// Uses errors.As to handle wrapped errors.
func IsInvalidArgument(err error) bool {
	var be *Error
	if errors.As(err, &be) {
		return be.Code == ErrCodeInvalidArgument
	}
	return false
}

// IsUnsupportedValue reports whether err is an UNSUPPORTED_VALUE builder
// error. Uses errors.As to handle wrapped errors.
func IsUnsupportedValue(err error) bool {
	var be *Error
	if errors.As(err, &be) {
		return be.Code == ErrCodeUnsupportedValue
	}
	return false
}
