package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/farmlink/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing ledger entries.
type TransactionFilter struct {
	UserID uuid.UUID
	Month  int // 1-12, 0 means no month filter
	Year   int // 0 means no year filter
	Type   *entity.TransactionType
}

// TransactionPagination defines pagination options.
type TransactionPagination struct {
	Page  int
	Limit int
}

// TransactionRepository defines the interface for ledger persistence.
// The ledger is append-only: there are no update or delete operations.
type TransactionRepository interface {
	// Create appends a new ledger entry.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByFilter retrieves ledger entries matching the filter,
	// paginated, newest first.
	FindByFilter(ctx context.Context, filter TransactionFilter, pagination TransactionPagination) (*entity.TransactionListResult, error)

	// GetMonthlySummary recomputes income, expense, net and entry count
	// for the user's entries in the given month by summing matching rows.
	GetMonthlySummary(ctx context.Context, userID uuid.UUID, month, year int) (*entity.MonthlySummary, error)
}
