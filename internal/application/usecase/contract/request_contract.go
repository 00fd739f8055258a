// Package contract contains contract lifecycle use cases.
package contract

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/farmlink/backend/internal/application/adapter"
	"github.com/farmlink/backend/internal/domain/entity"
	domainerror "github.com/farmlink/backend/internal/domain/error"
)

// RequestContractInput represents the input for requesting a contract.
type RequestContractInput struct {
	ListingID uuid.UUID
	BuyerID   uuid.UUID
	Terms     string
}

// RequestContractOutput represents the output of requesting a contract.
type RequestContractOutput struct {
	Contract *entity.Contract
}

// RequestContractUseCase handles contract request logic.
type RequestContractUseCase struct {
	listingRepo  adapter.ListingRepository
	contractRepo adapter.ContractRepository
}

// NewRequestContractUseCase creates a new RequestContractUseCase instance.
func NewRequestContractUseCase(
	listingRepo adapter.ListingRepository,
	contractRepo adapter.ContractRepository,
) *RequestContractUseCase {
	return &RequestContractUseCase{
		listingRepo:  listingRepo,
		contractRepo: contractRepo,
	}
}

// Execute creates a contract request against an active listing. The
// listing's crop type, quantity, unit and price are snapshot onto the
// contract, so listing edits after this point never change the deal.
func (uc *RequestContractUseCase) Execute(ctx context.Context, input RequestContractInput) (*RequestContractOutput, error) {
	listing, err := uc.listingRepo.FindByID(ctx, input.ListingID)
	if err != nil {
		if errors.Is(err, domainerror.ErrListingNotFound) {
			return nil, domainerror.NewListingError(
				domainerror.ErrCodeListingNotFound,
				"listing not found",
				domainerror.ErrListingNotFound,
			)
		}
		return nil, err
	}

	if listing.FarmerID == input.BuyerID {
		return nil, domainerror.NewContractError(
			domainerror.ErrCodeSelfDealing,
			"cannot request a contract on your own listing",
			domainerror.ErrSelfDealing,
		)
	}

	if listing.Status != entity.ListingStatusActive {
		return nil, domainerror.NewListingError(
			domainerror.ErrCodeListingNotActive,
			"listing is no longer available",
			domainerror.ErrListingNotActive,
		)
	}

	contract := entity.NewContract(listing, input.BuyerID, input.Terms)

	if err := uc.contractRepo.Create(ctx, contract); err != nil {
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}

	return &RequestContractOutput{Contract: contract}, nil
}
