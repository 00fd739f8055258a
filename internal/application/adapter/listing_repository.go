package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/farmlink/backend/internal/domain/entity"
)

// ListingFilter defines filter options for browsing listings.
type ListingFilter struct {
	CropType string
	District string
	State    string
	Status   *entity.ListingStatus
	FarmerID *uuid.UUID
}

// ListingPagination defines pagination options.
type ListingPagination struct {
	Page  int
	Limit int
}

// ListingRepository defines the interface for listing persistence operations.
type ListingRepository interface {
	// Create creates a new listing in the database.
	Create(ctx context.Context, listing *entity.Listing) error

	// FindByID retrieves a listing by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// FindByFilter retrieves listings matching the filter, paginated,
	// newest first.
	FindByFilter(ctx context.Context, filter ListingFilter, pagination ListingPagination) (*entity.ListingListResult, error)
}
