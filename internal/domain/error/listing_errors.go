package error

import "errors"

// Listing domain errors.
var (
	// ErrListingNotFound is returned when a listing is not found in the system.
	ErrListingNotFound = errors.New("listing not found")

	// ErrListingNotActive is returned when an operation requires an active listing.
	ErrListingNotActive = errors.New("listing is not active")

	// ErrInvalidQuantity is returned when the listing quantity is not positive.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrInvalidPrice is returned when the expected price is not positive.
	ErrInvalidPrice = errors.New("expected price must be positive")

	// ErrTooManyImages is returned when a listing carries more than the allowed images.
	ErrTooManyImages = errors.New("too many listing images")

	// ErrListingStatusConflict is returned when a conditional status transition
	// matched no row, meaning the listing left the required status concurrently.
	ErrListingStatusConflict = errors.New("listing status changed concurrently")
)

// ListingErrorCode defines error codes for listing errors.
// Format: LST-XXYYYY where XX is category and YYYY is specific error.
type ListingErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidQuantity      ListingErrorCode = "LST-010001"
	ErrCodeInvalidPrice         ListingErrorCode = "LST-010002"
	ErrCodeTooManyImages        ListingErrorCode = "LST-010003"
	ErrCodeMissingListingFields ListingErrorCode = "LST-010004"
	// Lookup errors (02XXXX)
	ErrCodeListingNotFound ListingErrorCode = "LST-020001"
	// Conflict errors (03XXXX)
	ErrCodeListingNotActive      ListingErrorCode = "LST-030001"
	ErrCodeListingStatusConflict ListingErrorCode = "LST-030002"
)

// ListingError represents a listing error with code and message.
type ListingError struct {
	Code    ListingErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ListingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ListingError) Unwrap() error {
	return e.Err
}

// NewListingError creates a new ListingError with the given code and message.
func NewListingError(code ListingErrorCode, message string, err error) *ListingError {
	return &ListingError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
