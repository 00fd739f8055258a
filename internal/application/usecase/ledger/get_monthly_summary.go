// Package ledger contains income/expense ledger use cases.
package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/farmlink/backend/internal/application/adapter"
	"github.com/farmlink/backend/internal/domain/entity"
	domainerror "github.com/farmlink/backend/internal/domain/error"
)

// GetMonthlySummaryInput represents the input for a monthly summary.
type GetMonthlySummaryInput struct {
	UserID uuid.UUID
	Month  int
	Year   int
}

// GetMonthlySummaryOutput represents the output of a monthly summary.
type GetMonthlySummaryOutput struct {
	Summary *entity.MonthlySummary
}

// GetMonthlySummaryUseCase handles monthly ledger aggregation. Totals
// are recomputed from the rows on every call rather than maintained as
// running balances.
type GetMonthlySummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetMonthlySummaryUseCase creates a new GetMonthlySummaryUseCase instance.
func NewGetMonthlySummaryUseCase(transactionRepo adapter.TransactionRepository) *GetMonthlySummaryUseCase {
	return &GetMonthlySummaryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute returns income, expense, net and entry count for the month.
func (uc *GetMonthlySummaryUseCase) Execute(ctx context.Context, input GetMonthlySummaryInput) (*GetMonthlySummaryOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidPeriod,
			"month must be between 1 and 12",
			domainerror.ErrInvalidPeriod,
		)
	}
	if input.Year < minLedgerYear {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidPeriod,
			"year is out of range",
			domainerror.ErrInvalidPeriod,
		)
	}

	summary, err := uc.transactionRepo.GetMonthlySummary(ctx, input.UserID, input.Month, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly summary: %w", err)
	}

	return &GetMonthlySummaryOutput{Summary: summary}, nil
}
