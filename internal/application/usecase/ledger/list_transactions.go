// Package ledger contains income/expense ledger use cases.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/farmlink/backend/internal/application/adapter"
	"github.com/farmlink/backend/internal/domain/entity"
	domainerror "github.com/farmlink/backend/internal/domain/error"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100

	minLedgerYear = 2000
)

// ListTransactionsInput represents the input for listing ledger entries.
// Month and year are optional filters; month requires year.
type ListTransactionsInput struct {
	UserID uuid.UUID
	Month  int
	Year   int
	Type   *entity.TransactionType
	Page   int
	Limit  int
}

// ListTransactionsOutput represents the output of listing ledger entries.
type ListTransactionsOutput struct {
	Result *entity.TransactionListResult
}

// ListTransactionsUseCase handles ledger listing for a user.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute returns a page of the user's ledger entries.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if err := validatePeriod(input.Month, input.Year); err != nil {
		return nil, err
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	filter := adapter.TransactionFilter{
		UserID: input.UserID,
		Month:  input.Month,
		Year:   input.Year,
		Type:   input.Type,
	}

	result, err := uc.transactionRepo.FindByFilter(ctx, filter, adapter.TransactionPagination{Page: page, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{Result: result}, nil
}

// validatePeriod checks the optional month/year filter. A month filter
// without a year is rejected because it would span every year.
func validatePeriod(month, year int) error {
	if month == 0 && year == 0 {
		return nil
	}
	if month < 0 || month > 12 {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidPeriod,
			"month must be between 1 and 12",
			domainerror.ErrInvalidPeriod,
		)
	}
	if month > 0 && year == 0 {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidPeriod,
			"month filter requires a year",
			domainerror.ErrInvalidPeriod,
		)
	}
	if year < minLedgerYear || year > time.Now().UTC().Year()+1 {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidPeriod,
			"year is out of range",
			domainerror.ErrInvalidPeriod,
		)
	}
	return nil
}
