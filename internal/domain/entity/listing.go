package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListingStatus represents the lifecycle state of a crop listing.
type ListingStatus string

const (
	ListingStatusActive     ListingStatus = "active"
	ListingStatusContracted ListingStatus = "contracted"
	ListingStatusCompleted  ListingStatus = "completed"
)

// MaxListingImages is the maximum number of image references per listing.
const MaxListingImages = 5

// Listing represents a farmer's offer to sell a crop.
// Status moves active -> contracted when a contract is accepted,
// contracted -> active when that contract is rejected or cancelled,
// and contracted -> completed when it completes.
type Listing struct {
	ID            uuid.UUID
	FarmerID      uuid.UUID
	CropType      string
	Quantity      decimal.Decimal
	Unit          string
	ExpectedPrice decimal.Decimal // per unit
	HarvestDate   *time.Time
	ImageURLs     []string
	District      string
	State         string
	Status        ListingStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewListing creates a new Listing in the active state.
func NewListing(
	farmerID uuid.UUID,
	cropType string,
	quantity decimal.Decimal,
	unit string,
	expectedPrice decimal.Decimal,
	harvestDate *time.Time,
	imageURLs []string,
	district, state string,
) *Listing {
	now := time.Now().UTC()
	return &Listing{
		ID:            uuid.New(),
		FarmerID:      farmerID,
		CropType:      cropType,
		Quantity:      quantity,
		Unit:          unit,
		ExpectedPrice: expectedPrice,
		HarvestDate:   harvestDate,
		ImageURLs:     imageURLs,
		District:      district,
		State:         state,
		Status:        ListingStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ListingListResult represents a page of listings.
type ListingListResult struct {
	Listings   []*Listing
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
