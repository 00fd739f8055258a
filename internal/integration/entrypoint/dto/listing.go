// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/farmlink/backend/internal/domain/entity"
)

// CreateListingRequest represents the request body for creating a listing.
type CreateListingRequest struct {
	CropType      string   `json:"crop_type" binding:"required,min=1,max=100"`
	Quantity      string   `json:"quantity" binding:"required"`
	Unit          string   `json:"unit" binding:"required,min=1,max=20"`
	ExpectedPrice string   `json:"expected_price" binding:"required"`
	HarvestDate   string   `json:"harvest_date" binding:"omitempty,datetime=2006-01-02"`
	ImageURLs     []string `json:"image_urls" binding:"omitempty,max=5,dive,url"`
	District      string   `json:"district" binding:"required,max=100"`
	State         string   `json:"state" binding:"required,max=100"`
}

// ListingResponse represents a listing in API responses. Quantities and
// prices are serialized as decimal strings.
type ListingResponse struct {
	ID            string    `json:"id"`
	FarmerID      string    `json:"farmer_id"`
	CropType      string    `json:"crop_type"`
	Quantity      string    `json:"quantity"`
	Unit          string    `json:"unit"`
	ExpectedPrice string    `json:"expected_price"`
	HarvestDate   *string   `json:"harvest_date"`
	ImageURLs     []string  `json:"image_urls"`
	District      string    `json:"district"`
	State         string    `json:"state"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToListingResponse converts a domain Listing entity to a ListingResponse DTO.
func ToListingResponse(listing *entity.Listing) ListingResponse {
	resp := ListingResponse{
		ID:            listing.ID.String(),
		FarmerID:      listing.FarmerID.String(),
		CropType:      listing.CropType,
		Quantity:      listing.Quantity.String(),
		Unit:          listing.Unit,
		ExpectedPrice: listing.ExpectedPrice.String(),
		ImageURLs:     listing.ImageURLs,
		District:      listing.District,
		State:         listing.State,
		Status:        string(listing.Status),
		CreatedAt:     listing.CreatedAt,
		UpdatedAt:     listing.UpdatedAt,
	}
	if listing.HarvestDate != nil {
		date := listing.HarvestDate.Format("2006-01-02")
		resp.HarvestDate = &date
	}
	if resp.ImageURLs == nil {
		resp.ImageURLs = []string{}
	}
	return resp
}

// ToListingResponses converts a slice of listings.
func ToListingResponses(listings []*entity.Listing) []ListingResponse {
	responses := make([]ListingResponse, 0, len(listings))
	for _, listing := range listings {
		responses = append(responses, ToListingResponse(listing))
	}
	return responses
}
