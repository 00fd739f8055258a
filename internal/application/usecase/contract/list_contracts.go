// Package contract contains contract lifecycle use cases.
package contract

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/farmlink/backend/internal/application/adapter"
	"github.com/farmlink/backend/internal/domain/entity"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ListContractsInput represents the input for listing a user's contracts.
type ListContractsInput struct {
	UserID uuid.UUID
	Status *entity.ContractStatus
	Page   int
	Limit  int
}

// ListContractsOutput represents the output of listing a user's contracts.
type ListContractsOutput struct {
	Result *entity.ContractListResult
}

// ListContractsUseCase handles contract listing for a party.
type ListContractsUseCase struct {
	contractRepo adapter.ContractRepository
}

// NewListContractsUseCase creates a new ListContractsUseCase instance.
func NewListContractsUseCase(contractRepo adapter.ContractRepository) *ListContractsUseCase {
	return &ListContractsUseCase{
		contractRepo: contractRepo,
	}
}

// Execute returns a page of the contracts the user is a party to.
func (uc *ListContractsUseCase) Execute(ctx context.Context, input ListContractsInput) (*ListContractsOutput, error) {
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

	filter := adapter.ContractFilter{
		UserID: input.UserID,
		Status: input.Status,
	}

	result, err := uc.contractRepo.FindByFilter(ctx, filter, adapter.ContractPagination{Page: page, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	return &ListContractsOutput{Result: result}, nil
}
