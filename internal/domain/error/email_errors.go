// Package error defines domain-specific errors for the FarmLink application.
package error

import "errors"

// Email domain errors.
var (
	// ErrInvalidTemplate is returned when an email job references an
	// unknown template type.
	ErrInvalidTemplate = errors.New("unknown email template type")

	// ErrEmailJobNotFound is returned when no queued email matches the identifier.
	ErrEmailJobNotFound = errors.New("email job not found")
)

// EmailErrorCode defines error codes for email errors.
// Format: EML-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTemplate EmailErrorCode = "EML-010001"
	// Delivery errors (02XXXX)
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EML-020001"
	ErrCodePermanentEmailFailure EmailErrorCode = "EML-020002"
	// Queue errors (03XXXX)
	ErrCodeEmailQueueFailed EmailErrorCode = "EML-030001"
)

// EmailError represents an email error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
