// Package contract contains contract lifecycle use cases.
package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/farmlink/backend/internal/application/adapter"
	"github.com/farmlink/backend/internal/domain/entity"
)

// StartDeliveryInput represents the input for starting delivery.
type StartDeliveryInput struct {
	ContractID uuid.UUID
	FarmerID   uuid.UUID
}

// StartDeliveryOutput represents the output of starting delivery.
type StartDeliveryOutput struct {
	Contract *entity.Contract
}

// StartDeliveryUseCase handles the accepted to in-progress transition.
type StartDeliveryUseCase struct {
	contractRepo adapter.ContractRepository
}

// NewStartDeliveryUseCase creates a new StartDeliveryUseCase instance.
func NewStartDeliveryUseCase(contractRepo adapter.ContractRepository) *StartDeliveryUseCase {
	return &StartDeliveryUseCase{
		contractRepo: contractRepo,
	}
}

// Execute marks an accepted contract as in progress, meaning the farmer
// has started fulfilling it.
func (uc *StartDeliveryUseCase) Execute(ctx context.Context, input StartDeliveryInput) (*StartDeliveryOutput, error) {
	contract, err := uc.contractRepo.StartDelivery(ctx, input.ContractID, input.FarmerID)
	if err != nil {
		return nil, mapTransitionError(err)
	}

	return &StartDeliveryOutput{Contract: contract}, nil
}
