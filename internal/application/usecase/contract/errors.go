package contract

import (
	"errors"

	domainerror "github.com/farmlink/backend/internal/domain/error"
)

// mapTransitionError converts repository sentinels from a lifecycle
// transition into coded contract errors. Unknown errors pass through.
func mapTransitionError(err error) error {
	switch {
	case errors.Is(err, domainerror.ErrContractNotFound):
		return domainerror.NewContractError(
			domainerror.ErrCodeContractNotFound,
			"contract not found",
			domainerror.ErrContractNotFound,
		)
	case errors.Is(err, domainerror.ErrContractCompleted):
		return domainerror.NewContractError(
			domainerror.ErrCodeContractCompleted,
			"contract has already been completed",
			domainerror.ErrContractCompleted,
		)
	case errors.Is(err, domainerror.ErrContractStatusConflict):
		return domainerror.NewContractError(
			domainerror.ErrCodeContractStatusConflict,
			"contract is not in a valid status for this operation",
			domainerror.ErrContractStatusConflict,
		)
	case errors.Is(err, domainerror.ErrListingStatusConflict):
		return domainerror.NewContractError(
			domainerror.ErrCodeContractStatusConflict,
			"listing status changed while applying the transition",
			domainerror.ErrListingStatusConflict,
		)
	default:
		return err
	}
}
