package error

import "errors"

// User profile domain errors.
var (
	// ErrProfileNotFound is returned when the profile's user record is absent.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInvalidBankDetails is returned when bank details fail validation.
	ErrInvalidBankDetails = errors.New("invalid bank details")

	// ErrInvalidPincode is returned when the location pincode is malformed.
	ErrInvalidPincode = errors.New("invalid pincode")
)

// UserErrorCode defines error codes for profile errors.
// Format: USR-XXYYYY where XX is category and YYYY is specific error.
type UserErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBankDetails UserErrorCode = "USR-010001"
	ErrCodeInvalidPincode     UserErrorCode = "USR-010002"
	// Lookup errors (02XXXX)
	ErrCodeProfileNotFound UserErrorCode = "USR-020001"
)

// UserError represents a profile error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
