package booking

import (
	"errors"
	"fmt"
)

// Error codes for the distinct business-rule rejections. Handlers map these
// to HTTP statuses; anything else is an infrastructure fault.
const (
	CodeNotFound          = "entityNotFound"
	CodeInvalidDateRange  = "invalidDateRange"
	CodeForbidden         = "forbidden"
	CodeInvalidTransition = "invalidTransition"
	CodeValidation        = "validationError"
)

// Error is a coded business-rule rejection.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(msg string) error {
	return &Error{Code: CodeNotFound, Message: msg}
}

func NewInvalidDateRangeError(msg string) error {
	return &Error{Code: CodeInvalidDateRange, Message: msg}
}

func NewForbiddenError(msg string) error {
	return &Error{Code: CodeForbidden, Message: msg}
}

func NewInvalidTransitionError(msg string) error {
	return &Error{Code: CodeInvalidTransition, Message: msg}
}

func NewValidationError(msg string) error {
	return &Error{Code: CodeValidation, Message: msg}
}

// CodeOf returns the business-rule code carried by err, or "" for
// infrastructure errors.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
