package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/farmlink/backend/internal/domain/entity"
)

// ListingModel represents the listings table in the database.
type ListingModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FarmerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	CropType      string          `gorm:"type:varchar(100);not null;index"`
	Quantity      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Unit          string          `gorm:"type:varchar(20);not null"`
	ExpectedPrice decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	HarvestDate   *time.Time      `gorm:"type:date"`
	ImageURLs     pq.StringArray  `gorm:"type:text[]"`
	District      string          `gorm:"type:varchar(100);index"`
	State         string          `gorm:"type:varchar(100);index"`
	Status        string          `gorm:"type:varchar(15);not null;index"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	// Relationship (not loaded by default, use Preload)
	Farmer *UserModel `gorm:"foreignKey:FarmerID;references:ID"`
}

// TableName returns the table name for the ListingModel.
func (ListingModel) TableName() string {
	return "listings"
}

// ToEntity converts a ListingModel to a domain Listing entity.
func (m *ListingModel) ToEntity() *entity.Listing {
	return &entity.Listing{
		ID:            m.ID,
		FarmerID:      m.FarmerID,
		CropType:      m.CropType,
		Quantity:      m.Quantity,
		Unit:          m.Unit,
		ExpectedPrice: m.ExpectedPrice,
		HarvestDate:   m.HarvestDate,
		ImageURLs:     []string(m.ImageURLs),
		District:      m.District,
		State:         m.State,
		Status:        entity.ListingStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ListingFromEntity creates a ListingModel from a domain Listing entity.
func ListingFromEntity(listing *entity.Listing) *ListingModel {
	return &ListingModel{
		ID:            listing.ID,
		FarmerID:      listing.FarmerID,
		CropType:      listing.CropType,
		Quantity:      listing.Quantity,
		Unit:          listing.Unit,
		ExpectedPrice: listing.ExpectedPrice,
		HarvestDate:   listing.HarvestDate,
		ImageURLs:     pq.StringArray(listing.ImageURLs),
		District:      listing.District,
		State:         listing.State,
		Status:        string(listing.Status),
		CreatedAt:     listing.CreatedAt,
		UpdatedAt:     listing.UpdatedAt,
	}
}
