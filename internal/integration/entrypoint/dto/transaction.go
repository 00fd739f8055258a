// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/farmlink/backend/internal/domain/entity"
)

// RecordTransactionRequest represents the request body for recording a
// ledger entry.
type RecordTransactionRequest struct {
	Type        string `json:"type" binding:"required,oneof=income expense"`
	Category    string `json:"category" binding:"required,min=1,max=100"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description" binding:"max=500"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
}

// TransactionResponse represents a ledger entry in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	ContractID  *string   `json:"contract_id"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// MonthlySummaryResponse represents aggregated ledger totals for one month.
type MonthlySummaryResponse struct {
	Month        int    `json:"month"`
	Year         int    `json:"year"`
	IncomeTotal  string `json:"income_total"`
	ExpenseTotal string `json:"expense_total"`
	NetTotal     string `json:"net_total"`
	Count        int64  `json:"count"`
}

// ToTransactionResponse converts a domain Transaction entity to a DTO.
func ToTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:          transaction.ID.String(),
		Type:        string(transaction.Type),
		Category:    transaction.Category,
		Amount:      transaction.Amount.String(),
		Description: transaction.Description,
		Date:        transaction.Date.Format("2006-01-02"),
		CreatedAt:   transaction.CreatedAt,
	}
	if transaction.ContractID != nil {
		id := transaction.ContractID.String()
		resp.ContractID = &id
	}
	return resp
}

// ToTransactionResponses converts a slice of ledger entries.
func ToTransactionResponses(transactions []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		responses = append(responses, ToTransactionResponse(transaction))
	}
	return responses
}

// ToMonthlySummaryResponse converts a domain MonthlySummary to a DTO.
func ToMonthlySummaryResponse(summary *entity.MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Month:        summary.Month,
		Year:         summary.Year,
		IncomeTotal:  summary.IncomeTotal.String(),
		ExpenseTotal: summary.ExpenseTotal.String(),
		NetTotal:     summary.NetTotal.String(),
		Count:        summary.Count,
	}
}
