// Package listing contains crop listing use cases.
package listing

import (
	"context"
	"fmt"

	"github.com/farmlink/backend/internal/application/adapter"
	"github.com/farmlink/backend/internal/domain/entity"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// BrowseListingsInput represents the input for browsing the marketplace.
// Only active listings are returned; filters narrow the result.
type BrowseListingsInput struct {
	CropType string
	District string
	State    string
	Page     int
	Limit    int
}

// BrowseListingsOutput represents the output of browsing the marketplace.
type BrowseListingsOutput struct {
	Result *entity.ListingListResult
}

// BrowseListingsUseCase handles marketplace browsing logic.
type BrowseListingsUseCase struct {
	listingRepo adapter.ListingRepository
}

// NewBrowseListingsUseCase creates a new BrowseListingsUseCase instance.
func NewBrowseListingsUseCase(listingRepo adapter.ListingRepository) *BrowseListingsUseCase {
	return &BrowseListingsUseCase{
		listingRepo: listingRepo,
	}
}

// Execute returns a page of active listings matching the filters.
func (uc *BrowseListingsUseCase) Execute(ctx context.Context, input BrowseListingsInput) (*BrowseListingsOutput, error) {
	active := entity.ListingStatusActive
	filter := adapter.ListingFilter{
		CropType: input.CropType,
		District: input.District,
		State:    input.State,
		Status:   &active,
	}

	result, err := uc.listingRepo.FindByFilter(ctx, filter, normalizePagination(input.Page, input.Limit))
	if err != nil {
		return nil, fmt.Errorf("failed to browse listings: %w", err)
	}

	return &BrowseListingsOutput{Result: result}, nil
}

// normalizePagination clamps page and limit to sane bounds.
func normalizePagination(page, limit int) adapter.ListingPagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return adapter.ListingPagination{Page: page, Limit: limit}
}
