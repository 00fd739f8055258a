// Package contract contains contract lifecycle use cases.
package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/farmlink/backend/internal/application/adapter"
	"github.com/farmlink/backend/internal/domain/entity"
)

// CompleteContractInput represents the input for completing a contract.
type CompleteContractInput struct {
	ContractID    uuid.UUID
	ActorID       uuid.UUID
	DeliveryProof string
}

// CompleteContractOutput represents the output of completing a contract.
type CompleteContractOutput struct {
	Contract *entity.Contract
}

// CompleteContractUseCase handles contract completion logic.
type CompleteContractUseCase struct {
	contractRepo adapter.ContractRepository
}

// NewCompleteContractUseCase creates a new CompleteContractUseCase instance.
func NewCompleteContractUseCase(contractRepo adapter.ContractRepository) *CompleteContractUseCase {
	return &CompleteContractUseCase{
		contractRepo: contractRepo,
	}
}

// Execute completes an accepted or in-progress contract. The contract,
// the listing and the matched income/expense ledger pair are written in
// one transaction, so the ledger pair exists exactly once per completed
// contract no matter how many completion attempts race.
func (uc *CompleteContractUseCase) Execute(ctx context.Context, input CompleteContractInput) (*CompleteContractOutput, error) {
	contract, err := uc.contractRepo.Complete(ctx, input.ContractID, input.ActorID, input.DeliveryProof)
	if err != nil {
		return nil, mapTransitionError(err)
	}

	return &CompleteContractOutput{Contract: contract}, nil
}
