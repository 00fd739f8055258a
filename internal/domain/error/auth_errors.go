// Package error defines domain-specific errors for the FarmLink application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailAlreadyExists is returned when registering with a taken email.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrInvalidEmail is returned when the email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword is returned when the password does not meet requirements.
	ErrWeakPassword = errors.New("password does not meet requirements")

	// ErrInvalidRole is returned when the declared role is not farmer or buyer.
	ErrInvalidRole = errors.New("role must be 'farmer' or 'buyer'")

	// ErrInvalidToken is returned when a JWT is malformed, expired or revoked.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrInvalidOTP is returned when a password reset code does not match or has expired.
	ErrInvalidOTP = errors.New("invalid or expired verification code")

	// ErrUserNotFound is returned when no user matches the identifier.
	ErrUserNotFound = errors.New("user not found")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEmail  AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword  AuthErrorCode = "AUTH-010002"
	ErrCodeInvalidRole   AuthErrorCode = "AUTH-010003"
	ErrCodeMissingFields AuthErrorCode = "AUTH-010004"
	ErrCodeInvalidOTP    AuthErrorCode = "AUTH-010005"
	// Authentication errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeMissingToken       AuthErrorCode = "AUTH-020002"
	ErrCodeInvalidToken       AuthErrorCode = "AUTH-020003"
	ErrCodeForbiddenRole      AuthErrorCode = "AUTH-020004"
	// Conflict errors (03XXXX)
	ErrCodeEmailAlreadyExists AuthErrorCode = "AUTH-030001"
	// Rate limiting (04XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUTH-040001"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
