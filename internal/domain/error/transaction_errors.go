package error

import "errors"

// Ledger domain errors.
var (
	// ErrTransactionNotFound is returned when a ledger entry is not found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the type is not income or expense.
	ErrInvalidTransactionType = errors.New("transaction type must be 'income' or 'expense'")

	// ErrInvalidTransactionAmount is returned when the amount is not positive.
	ErrInvalidTransactionAmount = errors.New("amount must be positive")

	// ErrFutureTransactionDate is returned when the transaction date is in the future.
	ErrFutureTransactionDate = errors.New("transaction date cannot be in the future")

	// ErrInvalidPeriod is returned when the month/year filter is out of range.
	ErrInvalidPeriod = errors.New("invalid month or year")
)

// TransactionErrorCode defines error codes for ledger errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010002"
	ErrCodeFutureTransactionDate    TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidPeriod            TransactionErrorCode = "TXN-010004"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010005"
	// Lookup errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"
)

// TransactionError represents a ledger error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
