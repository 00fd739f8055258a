package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContractStatus represents the lifecycle state of a contract.
type ContractStatus string

const (
	ContractStatusRequested  ContractStatus = "requested"
	ContractStatusAccepted   ContractStatus = "accepted"
	ContractStatusInProgress ContractStatus = "in_progress"
	ContractStatusCompleted  ContractStatus = "completed"
	ContractStatusCancelled  ContractStatus = "cancelled"
)

// IsTerminal reports whether the status admits no further transitions.
func (s ContractStatus) IsTerminal() bool {
	return s == ContractStatusCompleted || s == ContractStatusCancelled
}

// Contract represents a bilateral agreement between a farmer and a buyer
// over exactly one listing. Crop type, quantity, unit and price are
// snapshot-copied from the listing at request time; later listing edits
// never change an existing contract.
type Contract struct {
	ID          uuid.UUID
	ListingID   uuid.UUID
	FarmerID    uuid.UUID
	BuyerID     uuid.UUID
	CropType    string
	Quantity    decimal.Decimal
	Unit        string
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal
	Status      ContractStatus
	Terms       string
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewContract creates a contract in the requested state from a listing
// snapshot. TotalAmount is quantity times unit price, computed with
// decimal arithmetic.
func NewContract(listing *Listing, buyerID uuid.UUID, terms string) *Contract {
	now := time.Now().UTC()
	return &Contract{
		ID:          uuid.New(),
		ListingID:   listing.ID,
		FarmerID:    listing.FarmerID,
		BuyerID:     buyerID,
		CropType:    listing.CropType,
		Quantity:    listing.Quantity,
		Unit:        listing.Unit,
		UnitPrice:   listing.ExpectedPrice,
		TotalAmount: listing.Quantity.Mul(listing.ExpectedPrice),
		Status:      ContractStatusRequested,
		Terms:       terms,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsParty reports whether the given user is the farmer or the buyer
// on this contract.
func (c *Contract) IsParty(userID uuid.UUID) bool {
	return c.FarmerID == userID || c.BuyerID == userID
}

// ContractListResult represents a page of contracts.
type ContractListResult struct {
	Contracts  []*Contract
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
