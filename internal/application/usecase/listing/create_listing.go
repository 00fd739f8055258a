// Package listing contains crop listing use cases.
package listing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmlink/backend/internal/application/adapter"
	"github.com/farmlink/backend/internal/domain/entity"
	domainerror "github.com/farmlink/backend/internal/domain/error"
)

// CreateListingInput represents the input for creating a crop listing.
type CreateListingInput struct {
	FarmerID      uuid.UUID
	CropType      string
	Quantity      decimal.Decimal
	Unit          string
	ExpectedPrice decimal.Decimal
	HarvestDate   *time.Time
	ImageURLs     []string
	District      string
	State         string
}

// CreateListingOutput represents the output of creating a crop listing.
type CreateListingOutput struct {
	Listing *entity.Listing
}

// CreateListingUseCase handles crop listing creation logic.
type CreateListingUseCase struct {
	listingRepo adapter.ListingRepository
}

// NewCreateListingUseCase creates a new CreateListingUseCase instance.
func NewCreateListingUseCase(listingRepo adapter.ListingRepository) *CreateListingUseCase {
	return &CreateListingUseCase{
		listingRepo: listingRepo,
	}
}

// Execute validates the input and creates a new active listing.
func (uc *CreateListingUseCase) Execute(ctx context.Context, input CreateListingInput) (*CreateListingOutput, error) {
	if input.CropType == "" || input.Unit == "" {
		return nil, domainerror.NewListingError(
			domainerror.ErrCodeMissingListingFields,
			"crop type and unit are required",
			nil,
		)
	}

	if !input.Quantity.IsPositive() {
		return nil, domainerror.NewListingError(
			domainerror.ErrCodeInvalidQuantity,
			"quantity must be greater than zero",
			domainerror.ErrInvalidQuantity,
		)
	}

	if !input.ExpectedPrice.IsPositive() {
		return nil, domainerror.NewListingError(
			domainerror.ErrCodeInvalidPrice,
			"expected price must be greater than zero",
			domainerror.ErrInvalidPrice,
		)
	}

	if len(input.ImageURLs) > entity.MaxListingImages {
		return nil, domainerror.NewListingError(
			domainerror.ErrCodeTooManyImages,
			fmt.Sprintf("at most %d images are allowed per listing", entity.MaxListingImages),
			domainerror.ErrTooManyImages,
		)
	}

	listing := entity.NewListing(
		input.FarmerID,
		input.CropType,
		input.Quantity,
		input.Unit,
		input.ExpectedPrice,
		input.HarvestDate,
		input.ImageURLs,
		input.District,
		input.State,
	)

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}

	return &CreateListingOutput{Listing: listing}, nil
}
