// Package contract contains contract lifecycle use cases.
package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/farmlink/backend/internal/application/adapter"
	"github.com/farmlink/backend/internal/domain/entity"
)

// CancelContractInput represents the input for cancelling a contract.
type CancelContractInput struct {
	ContractID uuid.UUID
	ActorID    uuid.UUID
	Reason     string
}

// CancelContractOutput represents the output of cancelling a contract.
type CancelContractOutput struct {
	Contract *entity.Contract
}

// CancelContractUseCase handles contract cancellation logic.
type CancelContractUseCase struct {
	contractRepo adapter.ContractRepository
}

// NewCancelContractUseCase creates a new CancelContractUseCase instance.
func NewCancelContractUseCase(contractRepo adapter.ContractRepository) *CancelContractUseCase {
	return &CancelContractUseCase{
		contractRepo: contractRepo,
	}
}

// Execute cancels a non-completed contract as either party. Completed
// contracts stay completed; their ledger entries are never unwound.
func (uc *CancelContractUseCase) Execute(ctx context.Context, input CancelContractInput) (*CancelContractOutput, error) {
	contract, err := uc.contractRepo.Cancel(ctx, input.ContractID, input.ActorID, input.Reason)
	if err != nil {
		return nil, mapTransitionError(err)
	}

	return &CancelContractOutput{Contract: contract}, nil
}
