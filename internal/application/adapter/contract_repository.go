package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/farmlink/backend/internal/domain/entity"
)

// ContractFilter defines filter options for listing contracts.
// Results are always scoped to contracts on which UserID is a party.
type ContractFilter struct {
	UserID uuid.UUID
	Status *entity.ContractStatus
}

// ContractPagination defines pagination options.
type ContractPagination struct {
	Page  int
	Limit int
}

// ContractRepository defines the interface for contract persistence
// operations. The lifecycle transitions (Accept, StartDelivery, Reject,
// Complete, Cancel) each execute as one database transaction: the
// contract row, the associated listing row and any ledger rows are
// written all-or-nothing, with conditional updates gating every status
// transition so concurrent callers cannot double-apply one.
type ContractRepository interface {
	// Create creates a new contract in the database.
	Create(ctx context.Context, contract *entity.Contract) error

	// FindByIDForParty retrieves a contract by ID only if userID is the
	// farmer or the buyer on it. Non-parties get ErrContractNotFound,
	// never confirmation that the contract exists.
	FindByIDForParty(ctx context.Context, id, userID uuid.UUID) (*entity.Contract, error)

	// FindByFilter retrieves contracts the user is a party to, paginated,
	// newest first.
	FindByFilter(ctx context.Context, filter ContractFilter, pagination ContractPagination) (*entity.ContractListResult, error)

	// Accept transitions contract requested->accepted (only for its
	// farmer) and listing active->contracted atomically. Returns the
	// updated contract.
	Accept(ctx context.Context, contractID, farmerID uuid.UUID) (*entity.Contract, error)

	// StartDelivery transitions contract accepted->in_progress (only for
	// its farmer). Returns the updated contract.
	StartDelivery(ctx context.Context, contractID, farmerID uuid.UUID) (*entity.Contract, error)

	// Reject transitions contract requested/accepted->cancelled for
	// either party, appending the reason to the terms, and reverts the
	// listing contracted->active when the contract had been accepted.
	Reject(ctx context.Context, contractID, actorID uuid.UUID, reason string) (*entity.Contract, error)

	// Complete transitions contract accepted/in_progress->completed for
	// either party, sets the completion timestamp, appends the delivery
	// proof note, moves the listing to completed and appends the matched
	// income/expense ledger pair, all in one transaction.
	Complete(ctx context.Context, contractID, actorID uuid.UUID, deliveryProof string) (*entity.Contract, error)

	// Cancel transitions any non-completed contract to cancelled for
	// either party, appending the reason, and reverts the listing
	// contracted->active when applicable.
	Cancel(ctx context.Context, contractID, actorID uuid.UUID, reason string) (*entity.Contract, error)
}
