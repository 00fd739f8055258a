// Package listing contains crop listing use cases.
package listing

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/farmlink/backend/internal/application/adapter"
	"github.com/farmlink/backend/internal/domain/entity"
	domainerror "github.com/farmlink/backend/internal/domain/error"
)

// GetListingInput represents the input for fetching a single listing.
type GetListingInput struct {
	ListingID uuid.UUID
}

// GetListingOutput represents the output of fetching a single listing.
type GetListingOutput struct {
	Listing *entity.Listing
}

// GetListingUseCase handles single listing retrieval.
type GetListingUseCase struct {
	listingRepo adapter.ListingRepository
}

// NewGetListingUseCase creates a new GetListingUseCase instance.
func NewGetListingUseCase(listingRepo adapter.ListingRepository) *GetListingUseCase {
	return &GetListingUseCase{
		listingRepo: listingRepo,
	}
}

// Execute fetches a listing by ID.
func (uc *GetListingUseCase) Execute(ctx context.Context, input GetListingInput) (*GetListingOutput, error) {
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

	return &GetListingOutput{Listing: listing}, nil
}
