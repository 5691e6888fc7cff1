package warctext

import (
	"errors"
	"fmt"
)

// ErrorCode classifies an Error for callers that need to branch on failure
// kind without string-matching messages.
type ErrorCode string

// Application error codes.
const (
	EINVALID  ErrorCode = "invalid"   // bad input, e.g. a malformed header value
	ENOTFOUND ErrorCode = "not_found" // referenced record/node does not exist
	EIO       ErrorCode = "io"        // upstream byte-stream failure
	EINTERNAL ErrorCode = "internal"  // unexpected internal state
)

// Error is an application error carrying a machine-readable Code alongside
// a human-readable Message.
type Error struct {
	Code    ErrorCode
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Errorf builds an *Error with a code and a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Code returns the ErrorCode of err, or EINTERNAL if err is not an *Error
// (or one wrapping an *Error). A nil err yields the empty code.
func Code(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	if err == nil {
		return ""
	}
	return EINTERNAL
}
