package payment

import (
	"errors"
	"fmt"
)

// Error codes mirroring the callable error domain exposed to clients.
const (
	CodeUnauthenticated = "unauthenticated"
	CodeInvalidArgument = "invalid-argument"
	CodeInternal        = "internal"
)

// Error is a payment-domain error with a stable code so handlers can map
// it to the right HTTP status without string matching.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// InvalidArgumentf builds a caller error.
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return &Error{Code: CodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// Internalf builds a processor-side error, carrying the underlying message.
func Internalf(format string, args ...interface{}) *Error {
	return &Error{Code: CodeInternal, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the error code, defaulting to internal.
func CodeOf(err error) string {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code
	}
	return CodeInternal
}

// SignatureError marks a webhook payload that failed signature
// verification. Nothing may be mutated when this is returned.
type SignatureError struct {
	Err error
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("webhook signature verification failed: %v", e.Err)
}

func (e *SignatureError) Unwrap() error { return e.Err }
