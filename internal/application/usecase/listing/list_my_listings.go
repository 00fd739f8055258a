// Package listing contains crop listing use cases.
package listing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/farmlink/backend/internal/application/adapter"
	"github.com/farmlink/backend/internal/domain/entity"
)

// ListMyListingsInput represents the input for listing a farmer's own
// listings, in any status.
type ListMyListingsInput struct {
	FarmerID uuid.UUID
	Status   *entity.ListingStatus
	Page     int
	Limit    int
}

// ListMyListingsOutput represents the output of listing a farmer's own listings.
type ListMyListingsOutput struct {
	Result *entity.ListingListResult
}

// ListMyListingsUseCase handles a farmer's own listing overview.
type ListMyListingsUseCase struct {
	listingRepo adapter.ListingRepository
}

// NewListMyListingsUseCase creates a new ListMyListingsUseCase instance.
func NewListMyListingsUseCase(listingRepo adapter.ListingRepository) *ListMyListingsUseCase {
	return &ListMyListingsUseCase{
		listingRepo: listingRepo,
	}
}

// Execute returns a page of the farmer's listings.
func (uc *ListMyListingsUseCase) Execute(ctx context.Context, input ListMyListingsInput) (*ListMyListingsOutput, error) {
	filter := adapter.ListingFilter{
		FarmerID: &input.FarmerID,
		Status:   input.Status,
	}

	result, err := uc.listingRepo.FindByFilter(ctx, filter, normalizePagination(input.Page, input.Limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}

	return &ListMyListingsOutput{Result: result}, nil
}
