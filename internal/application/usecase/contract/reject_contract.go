// Package contract contains contract lifecycle use cases.
package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/farmlink/backend/internal/application/adapter"
	"github.com/farmlink/backend/internal/domain/entity"
)

// RejectContractInput represents the input for rejecting a contract.
type RejectContractInput struct {
	ContractID uuid.UUID
	ActorID    uuid.UUID
	Reason     string
}

// RejectContractOutput represents the output of rejecting a contract.
type RejectContractOutput struct {
	Contract *entity.Contract
}

// RejectContractUseCase handles contract rejection logic.
type RejectContractUseCase struct {
	contractRepo adapter.ContractRepository
}

// NewRejectContractUseCase creates a new RejectContractUseCase instance.
func NewRejectContractUseCase(contractRepo adapter.ContractRepository) *RejectContractUseCase {
	return &RejectContractUseCase{
		contractRepo: contractRepo,
	}
}

// Execute rejects a requested or accepted contract as either party.
// Rejecting an accepted contract puts the listing back on the market.
func (uc *RejectContractUseCase) Execute(ctx context.Context, input RejectContractInput) (*RejectContractOutput, error) {
	contract, err := uc.contractRepo.Reject(ctx, input.ContractID, input.ActorID, input.Reason)
	if err != nil {
		return nil, mapTransitionError(err)
	}

	return &RejectContractOutput{Contract: contract}, nil
}
