package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of ledger entry (income or expense).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValidTransactionType reports whether the given type is known.
func IsValidTransactionType(t TransactionType) bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents an immutable ledger entry owned by exactly
// one user. Entries are write-once: nothing in the system updates or
// deletes them after creation. A completed contract produces a matched
// pair, one income entry for the farmer and one expense entry for the
// buyer, both referencing the contract.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        TransactionType
	Category    string
	Amount      decimal.Decimal // always positive
	Description string
	ContractID  *uuid.UUID
	Date        time.Time
	CreatedAt   time.Time
}

// NewTransaction creates a new ledger entry.
func NewTransaction(
	userID uuid.UUID,
	transactionType TransactionType,
	category string,
	amount decimal.Decimal,
	description string,
	contractID *uuid.UUID,
	date time.Time,
) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        transactionType,
		Category:    category,
		Amount:      amount,
		Description: description,
		ContractID:  contractID,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}
}

// TransactionListResult represents a page of ledger entries.
type TransactionListResult struct {
	Transactions []*Transaction
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}

// MonthlySummary represents aggregated ledger totals for one month,
// recomputed from matching rows on every query.
type MonthlySummary struct {
	Month        int
	Year         int
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
	Count        int64
}
