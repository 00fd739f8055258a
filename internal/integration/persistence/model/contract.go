package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmlink/backend/internal/domain/entity"
)

// ContractModel represents the contracts table in the database.
// Crop type, quantity, unit and price are a snapshot of the listing at
// request time, never a join back to the listing row.
type ContractModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ListingID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	FarmerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	BuyerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CropType    string          `gorm:"type:varchar(100);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Unit        string          `gorm:"type:varchar(20);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status      string          `gorm:"type:varchar(15);not null;index"`
	Terms       string          `gorm:"type:text"`
	CompletedAt *time.Time      `gorm:"type:timestamp"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Listing *ListingModel `gorm:"foreignKey:ListingID;references:ID"`
	Farmer  *UserModel    `gorm:"foreignKey:FarmerID;references:ID"`
	Buyer   *UserModel    `gorm:"foreignKey:BuyerID;references:ID"`
}

// TableName returns the table name for the ContractModel.
func (ContractModel) TableName() string {
	return "contracts"
}

// ToEntity converts a ContractModel to a domain Contract entity.
func (m *ContractModel) ToEntity() *entity.Contract {
	return &entity.Contract{
		ID:          m.ID,
		ListingID:   m.ListingID,
		FarmerID:    m.FarmerID,
		BuyerID:     m.BuyerID,
		CropType:    m.CropType,
		Quantity:    m.Quantity,
		Unit:        m.Unit,
		UnitPrice:   m.UnitPrice,
		TotalAmount: m.TotalAmount,
		Status:      entity.ContractStatus(m.Status),
		Terms:       m.Terms,
		CompletedAt: m.CompletedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ContractFromEntity creates a ContractModel from a domain Contract entity.
func ContractFromEntity(contract *entity.Contract) *ContractModel {
	return &ContractModel{
		ID:          contract.ID,
		ListingID:   contract.ListingID,
		FarmerID:    contract.FarmerID,
		BuyerID:     contract.BuyerID,
		CropType:    contract.CropType,
		Quantity:    contract.Quantity,
		Unit:        contract.Unit,
		UnitPrice:   contract.UnitPrice,
		TotalAmount: contract.TotalAmount,
		Status:      string(contract.Status),
		Terms:       contract.Terms,
		CompletedAt: contract.CompletedAt,
		CreatedAt:   contract.CreatedAt,
		UpdatedAt:   contract.UpdatedAt,
	}
}
