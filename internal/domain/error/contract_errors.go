package error

import "errors"

// Contract domain errors.
var (
	// ErrContractNotFound is returned when no contract matches the identifier,
	// status and ownership required by an operation. It deliberately covers
	// both absence and non-party access, so existence is never confirmed to
	// a caller who is not a party.
	ErrContractNotFound = errors.New("contract not found")

	// ErrContractStatusConflict is returned when the contract is not in a
	// status that admits the requested transition.
	ErrContractStatusConflict = errors.New("contract is not in a valid status for this operation")

	// ErrSelfDealing is returned when a farmer requests a contract against
	// their own listing.
	ErrSelfDealing = errors.New("cannot request a contract on your own listing")

	// ErrNotContractParty is returned when the caller is neither the farmer
	// nor the buyer on the contract.
	ErrNotContractParty = errors.New("not a party to this contract")

	// ErrContractCompleted is returned when attempting to cancel a completed contract.
	ErrContractCompleted = errors.New("contract already completed")
)

// ContractErrorCode defines error codes for contract errors.
// Format: CTR-XXYYYY where XX is category and YYYY is specific error.
type ContractErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingContractFields ContractErrorCode = "CTR-010001"
	// Lookup errors (02XXXX)
	ErrCodeContractNotFound ContractErrorCode = "CTR-020001"
	// Authorization errors (03XXXX)
	ErrCodeSelfDealing      ContractErrorCode = "CTR-030001"
	ErrCodeNotContractParty ContractErrorCode = "CTR-030002"
	// Conflict errors (04XXXX)
	ErrCodeContractStatusConflict ContractErrorCode = "CTR-040001"
	ErrCodeContractCompleted      ContractErrorCode = "CTR-040002"
)

// ContractError represents a contract error with code and message.
type ContractError struct {
	Code    ContractErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ContractError) Unwrap() error {
	return e.Err
}

// NewContractError creates a new ContractError with the given code and message.
func NewContractError(code ContractErrorCode, message string, err error) *ContractError {
	return &ContractError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
