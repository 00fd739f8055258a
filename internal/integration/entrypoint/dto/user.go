// Package dto defines data transfer objects for API requests and responses.
package dto

// UpdateProfileRequest represents the request body for profile updates.
// Omitted fields are left unchanged.
type UpdateProfileRequest struct {
	Name     *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Phone    *string          `json:"phone" binding:"omitempty,min=10,max=15"`
	Location *LocationRequest `json:"location"`
}

// LocationRequest represents an address in request bodies.
type LocationRequest struct {
	Village  string `json:"village" binding:"max=100"`
	District string `json:"district" binding:"max=100"`
	State    string `json:"state" binding:"max=100"`
	Pincode  string `json:"pincode" binding:"omitempty,len=6,numeric"`
}

// UpdateBankDetailsRequest represents the request body for payout
// account updates.
type UpdateBankDetailsRequest struct {
	AccountHolder string `json:"account_holder" binding:"required,min=1,max=100"`
	AccountNumber string `json:"account_number" binding:"required,min=9,max=18,numeric"`
	IFSC          string `json:"ifsc" binding:"required,len=11"`
	BankName      string `json:"bank_name" binding:"required,min=1,max=100"`
}
