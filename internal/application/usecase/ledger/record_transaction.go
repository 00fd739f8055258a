// Package ledger contains income/expense ledger use cases.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmlink/backend/internal/application/adapter"
	"github.com/farmlink/backend/internal/domain/entity"
	domainerror "github.com/farmlink/backend/internal/domain/error"
)

// RecordTransactionInput represents the input for recording a ledger entry.
type RecordTransactionInput struct {
	UserID      uuid.UUID
	Type        string
	Category    string
	Amount      decimal.Decimal
	Description string
	Date        time.Time
}

// RecordTransactionOutput represents the output of recording a ledger entry.
type RecordTransactionOutput struct {
	Transaction *entity.Transaction
}

// RecordTransactionUseCase handles manual ledger entry creation. Entries
// are write-once: there is no update or delete counterpart.
type RecordTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewRecordTransactionUseCase creates a new RecordTransactionUseCase instance.
func NewRecordTransactionUseCase(transactionRepo adapter.TransactionRepository) *RecordTransactionUseCase {
	return &RecordTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute validates and appends a manual ledger entry for the user.
func (uc *RecordTransactionUseCase) Execute(ctx context.Context, input RecordTransactionInput) (*RecordTransactionOutput, error) {
	transactionType := entity.TransactionType(input.Type)
	if !entity.IsValidTransactionType(transactionType) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be either income or expense",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if input.Category == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"category is required",
			nil,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if input.Date.After(time.Now().UTC()) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeFutureTransactionDate,
			"transaction date cannot be in the future",
			domainerror.ErrFutureTransactionDate,
		)
	}

	transaction := entity.NewTransaction(
		input.UserID,
		transactionType,
		input.Category,
		input.Amount,
		input.Description,
		nil,
		input.Date,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	return &RecordTransactionOutput{Transaction: transaction}, nil
}
