// Package contract contains contract lifecycle use cases.
package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/farmlink/backend/internal/application/adapter"
	"github.com/farmlink/backend/internal/domain/entity"
)

// GetContractInput represents the input for fetching a single contract.
type GetContractInput struct {
	ContractID uuid.UUID
	UserID     uuid.UUID
}

// GetContractOutput represents the output of fetching a single contract.
type GetContractOutput struct {
	Contract *entity.Contract
}

// GetContractUseCase handles single contract retrieval.
type GetContractUseCase struct {
	contractRepo adapter.ContractRepository
}

// NewGetContractUseCase creates a new GetContractUseCase instance.
func NewGetContractUseCase(contractRepo adapter.ContractRepository) *GetContractUseCase {
	return &GetContractUseCase{
		contractRepo: contractRepo,
	}
}

// Execute fetches a contract the user is a party to. Non-parties get a
// not-found error, never confirmation that the contract exists.
func (uc *GetContractUseCase) Execute(ctx context.Context, input GetContractInput) (*GetContractOutput, error) {
	contract, err := uc.contractRepo.FindByIDForParty(ctx, input.ContractID, input.UserID)
	if err != nil {
		return nil, mapTransitionError(err)
	}

	return &GetContractOutput{Contract: contract}, nil
}
