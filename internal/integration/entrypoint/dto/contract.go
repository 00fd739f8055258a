// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/farmlink/backend/internal/domain/entity"
)

// RequestContractRequest represents the request body for a contract
// request. The listing is addressed by the URL path.
type RequestContractRequest struct {
	Terms string `json:"terms" binding:"max=2000"`
}

// ContractReasonRequest represents the request body for reject and
// cancel operations.
type ContractReasonRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=500"`
}

// CompleteContractRequest represents the request body for completing
// a contract.
type CompleteContractRequest struct {
	DeliveryProof string `json:"delivery_proof" binding:"max=500"`
}

// ContractResponse represents a contract in API responses. Amounts are
// serialized as decimal strings.
type ContractResponse struct {
	ID          string     `json:"id"`
	ListingID   string     `json:"listing_id"`
	FarmerID    string     `json:"farmer_id"`
	BuyerID     string     `json:"buyer_id"`
	CropType    string     `json:"crop_type"`
	Quantity    string     `json:"quantity"`
	Unit        string     `json:"unit"`
	UnitPrice   string     `json:"unit_price"`
	TotalAmount string     `json:"total_amount"`
	Status      string     `json:"status"`
	Terms       string     `json:"terms"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ToContractResponse converts a domain Contract entity to a ContractResponse DTO.
func ToContractResponse(contract *entity.Contract) ContractResponse {
	return ContractResponse{
		ID:          contract.ID.String(),
		ListingID:   contract.ListingID.String(),
		FarmerID:    contract.FarmerID.String(),
		BuyerID:     contract.BuyerID.String(),
		CropType:    contract.CropType,
		Quantity:    contract.Quantity.String(),
		Unit:        contract.Unit,
		UnitPrice:   contract.UnitPrice.String(),
		TotalAmount: contract.TotalAmount.String(),
		Status:      string(contract.Status),
		Terms:       contract.Terms,
		CompletedAt: contract.CompletedAt,
		CreatedAt:   contract.CreatedAt,
		UpdatedAt:   contract.UpdatedAt,
	}
}

// ToContractResponses converts a slice of contracts.
func ToContractResponses(contracts []*entity.Contract) []ContractResponse {
	responses := make([]ContractResponse, 0, len(contracts))
	for _, contract := range contracts {
		responses = append(responses, ToContractResponse(contract))
	}
	return responses
}
