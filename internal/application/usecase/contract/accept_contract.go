// Package contract contains contract lifecycle use cases.
package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/farmlink/backend/internal/application/adapter"
	"github.com/farmlink/backend/internal/domain/entity"
)

// AcceptContractInput represents the input for accepting a contract.
type AcceptContractInput struct {
	ContractID uuid.UUID
	FarmerID   uuid.UUID
}

// AcceptContractOutput represents the output of accepting a contract.
type AcceptContractOutput struct {
	Contract *entity.Contract
}

// AcceptContractUseCase handles contract acceptance logic.
type AcceptContractUseCase struct {
	contractRepo adapter.ContractRepository
}

// NewAcceptContractUseCase creates a new AcceptContractUseCase instance.
func NewAcceptContractUseCase(contractRepo adapter.ContractRepository) *AcceptContractUseCase {
	return &AcceptContractUseCase{
		contractRepo: contractRepo,
	}
}

// Execute accepts a requested contract as its farmer. The contract and
// the underlying listing move together in one transaction, so a second
// concurrent accept observes a status conflict instead of double-applying.
func (uc *AcceptContractUseCase) Execute(ctx context.Context, input AcceptContractInput) (*AcceptContractOutput, error) {
	contract, err := uc.contractRepo.Accept(ctx, input.ContractID, input.FarmerID)
	if err != nil {
		return nil, mapTransitionError(err)
	}

	return &AcceptContractOutput{Contract: contract}, nil
}
