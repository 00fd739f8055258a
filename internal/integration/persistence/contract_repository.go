package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farmlink/backend/internal/application/adapter"
	"github.com/farmlink/backend/internal/domain/entity"
	domainerror "github.com/farmlink/backend/internal/domain/error"
	"github.com/farmlink/backend/internal/integration/persistence/model"
)

// contractRepository implements the adapter.ContractRepository interface.
//
// Every lifecycle transition runs inside one database transaction and
// gates each status change with a conditional update (WHERE carries the
// required current status). Zero affected rows means another request
// won the transition; the whole transaction rolls back, so the contract
// row, the listing row and the ledger rows are never partially applied.
type contractRepository struct {
	db *gorm.DB
}

// NewContractRepository creates a new contract repository instance.
func NewContractRepository(db *gorm.DB) adapter.ContractRepository {
	return &contractRepository{
		db: db,
	}
}

// Create creates a new contract in the database.
func (r *contractRepository) Create(ctx context.Context, contract *entity.Contract) error {
	contractModel := model.ContractFromEntity(contract)
	result := r.db.WithContext(ctx).Create(contractModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByIDForParty retrieves a contract by ID scoped to its parties.
// Absence and non-party access are indistinguishable to the caller.
func (r *contractRepository) FindByIDForParty(ctx context.Context, id, userID uuid.UUID) (*entity.Contract, error) {
	var contractModel model.ContractModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND (farmer_id = ? OR buyer_id = ?)", id, userID, userID).
		First(&contractModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrContractNotFound
		}
		return nil, result.Error
	}
	return contractModel.ToEntity(), nil
}

// FindByFilter retrieves contracts the user is a party to with pagination.
func (r *contractRepository) FindByFilter(ctx context.Context, filter adapter.ContractFilter, pagination adapter.ContractPagination) (*entity.ContractListResult, error) {
	query := r.db.WithContext(ctx).
		Model(&model.ContractModel{}).
		Where("farmer_id = ? OR buyer_id = ?", filter.UserID, filter.UserID)

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (pagination.Page - 1) * pagination.Limit
	totalPages := int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))
	if totalPages == 0 {
		totalPages = 1
	}

	var contractModels []model.ContractModel
	result := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&contractModels)
	if result.Error != nil {
		return nil, result.Error
	}

	contracts := make([]*entity.Contract, len(contractModels))
	for i, cm := range contractModels {
		contracts[i] = cm.ToEntity()
	}

	return &entity.ContractListResult{
		Contracts:  contracts,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
	}, nil
}

// Accept transitions contract requested->accepted and its listing
// active->contracted atomically. Only the contract's farmer may accept.
func (r *contractRepository) Accept(ctx context.Context, contractID, farmerID uuid.UUID) (*entity.Contract, error) {
	var accepted *entity.Contract

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		result := tx.Model(&model.ContractModel{}).
			Where("id = ? AND farmer_id = ? AND status = ?", contractID, farmerID, string(entity.ContractStatusRequested)).
			Updates(map[string]any{
				"status":     string(entity.ContractStatusAccepted),
				"updated_at": now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return r.classifyFailedTransition(tx, contractID, farmerID, true)
		}

		var contractModel model.ContractModel
		if err := tx.Where("id = ?", contractID).First(&contractModel).Error; err != nil {
			return err
		}

		if err := transitionListing(tx, contractModel.ListingID, entity.ListingStatusActive, entity.ListingStatusContracted); err != nil {
			return err
		}

		accepted = contractModel.ToEntity()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accepted, nil
}

// StartDelivery transitions contract accepted->in_progress for its farmer.
func (r *contractRepository) StartDelivery(ctx context.Context, contractID, farmerID uuid.UUID) (*entity.Contract, error) {
	var started *entity.Contract

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.ContractModel{}).
			Where("id = ? AND farmer_id = ? AND status = ?", contractID, farmerID, string(entity.ContractStatusAccepted)).
			Updates(map[string]any{
				"status":     string(entity.ContractStatusInProgress),
				"updated_at": time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return r.classifyFailedTransition(tx, contractID, farmerID, true)
		}

		var contractModel model.ContractModel
		if err := tx.Where("id = ?", contractID).First(&contractModel).Error; err != nil {
			return err
		}
		started = contractModel.ToEntity()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return started, nil
}

// Reject transitions contract requested/accepted->cancelled for either
// party. When the contract had been accepted, the listing reverts to
// active in the same transaction.
func (r *contractRepository) Reject(ctx context.Context, contractID, actorID uuid.UUID, reason string) (*entity.Contract, error) {
	return r.terminate(ctx, contractID, actorID,
		[]entity.ContractStatus{entity.ContractStatusRequested, entity.ContractStatusAccepted},
		"Rejected: "+reason,
	)
}

// Cancel transitions any non-terminal contract to cancelled for either
// party, reverting the listing to active when it had been contracted.
func (r *contractRepository) Cancel(ctx context.Context, contractID, actorID uuid.UUID, reason string) (*entity.Contract, error) {
	return r.terminate(ctx, contractID, actorID,
		[]entity.ContractStatus{entity.ContractStatusRequested, entity.ContractStatusAccepted, entity.ContractStatusInProgress},
		"Cancelled: "+reason,
	)
}

// terminate is the shared reject/cancel path: contract -> cancelled
// from one of the allowed statuses, note appended to the terms, listing
// reverted when the contract had taken it off the market.
func (r *contractRepository) terminate(ctx context.Context, contractID, actorID uuid.UUID, allowed []entity.ContractStatus, note string) (*entity.Contract, error) {
	var cancelled *entity.Contract

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var contractModel model.ContractModel
		result := tx.Where("id = ? AND (farmer_id = ? OR buyer_id = ?)", contractID, actorID, actorID).
			First(&contractModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return domainerror.ErrContractNotFound
			}
			return result.Error
		}

		prior := entity.ContractStatus(contractModel.Status)
		if prior == entity.ContractStatusCompleted {
			return domainerror.ErrContractCompleted
		}
		if !statusAllowed(prior, allowed) {
			return domainerror.ErrContractStatusConflict
		}

		// The WHERE re-checks the status: if another request moved the
		// contract between the read above and this write, zero rows match
		// and the operation fails instead of double-applying.
		update := tx.Model(&model.ContractModel{}).
			Where("id = ? AND status = ?", contractID, string(prior)).
			Updates(map[string]any{
				"status":     string(entity.ContractStatusCancelled),
				"terms":      gorm.Expr("terms || ?", "\n"+note),
				"updated_at": time.Now().UTC(),
			})
		if update.Error != nil {
			return update.Error
		}
		if update.RowsAffected == 0 {
			return domainerror.ErrContractStatusConflict
		}

		// Only an accepted or in-progress contract holds the listing in
		// contracted; a requested contract never changed it.
		if prior == entity.ContractStatusAccepted || prior == entity.ContractStatusInProgress {
			if err := transitionListing(tx, contractModel.ListingID, entity.ListingStatusContracted, entity.ListingStatusActive); err != nil {
				return err
			}
		}

		if err := tx.Where("id = ?", contractID).First(&contractModel).Error; err != nil {
			return err
		}
		cancelled = contractModel.ToEntity()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

// Complete transitions contract accepted/in_progress->completed, moves
// the listing to completed and appends the matched income/expense
// ledger pair, all in one transaction. A crash at any point leaves
// either all four writes or none.
func (r *contractRepository) Complete(ctx context.Context, contractID, actorID uuid.UUID, deliveryProof string) (*entity.Contract, error) {
	var completed *entity.Contract

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var contractModel model.ContractModel
		result := tx.Where("id = ? AND (farmer_id = ? OR buyer_id = ?)", contractID, actorID, actorID).
			First(&contractModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return domainerror.ErrContractNotFound
			}
			return result.Error
		}

		prior := entity.ContractStatus(contractModel.Status)
		if prior != entity.ContractStatusAccepted && prior != entity.ContractStatusInProgress {
			return domainerror.ErrContractStatusConflict
		}

		now := time.Now().UTC()
		note := "\nCompleted"
		if deliveryProof != "" {
			note = "\nCompleted. Delivery proof: " + deliveryProof
		}

		update := tx.Model(&model.ContractModel{}).
			Where("id = ? AND status IN ?", contractID, []string{
				string(entity.ContractStatusAccepted),
				string(entity.ContractStatusInProgress),
			}).
			Updates(map[string]any{
				"status":       string(entity.ContractStatusCompleted),
				"completed_at": now,
				"terms":        gorm.Expr("terms || ?", note),
				"updated_at":   now,
			})
		if update.Error != nil {
			return update.Error
		}
		if update.RowsAffected == 0 {
			// Lost the race against a concurrent complete/cancel; the
			// ledger pair for this contract is written at most once.
			return domainerror.ErrContractStatusConflict
		}

		if err := transitionListing(tx, contractModel.ListingID, entity.ListingStatusContracted, entity.ListingStatusCompleted); err != nil {
			return err
		}

		description := fmt.Sprintf("Contract settlement: %s %s %s",
			contractModel.Quantity.String(), contractModel.Unit, contractModel.CropType)

		income := entity.NewTransaction(
			contractModel.FarmerID,
			entity.TransactionTypeIncome,
			"contract_sale",
			contractModel.TotalAmount,
			description,
			&contractModel.ID,
			now,
		)
		expense := entity.NewTransaction(
			contractModel.BuyerID,
			entity.TransactionTypeExpense,
			"contract_purchase",
			contractModel.TotalAmount,
			description,
			&contractModel.ID,
			now,
		)

		if err := tx.Create(model.TransactionFromEntity(income)).Error; err != nil {
			return err
		}
		if err := tx.Create(model.TransactionFromEntity(expense)).Error; err != nil {
			return err
		}

		if err := tx.Where("id = ?", contractID).First(&contractModel).Error; err != nil {
			return err
		}
		completed = contractModel.ToEntity()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return completed, nil
}

// classifyFailedTransition turns a zero-row conditional update into the
// right domain error. A caller who is not the required party gets
// ErrContractNotFound so the contract's existence is not confirmed;
// the right party in the wrong status gets a status conflict.
func (r *contractRepository) classifyFailedTransition(tx *gorm.DB, contractID, actorID uuid.UUID, farmerOnly bool) error {
	query := tx.Model(&model.ContractModel{})
	if farmerOnly {
		query = query.Where("id = ? AND farmer_id = ?", contractID, actorID)
	} else {
		query = query.Where("id = ? AND (farmer_id = ? OR buyer_id = ?)", contractID, actorID, actorID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domainerror.ErrContractNotFound
	}
	return domainerror.ErrContractStatusConflict
}

// transitionListing applies a conditional listing status change inside
// an open transaction, failing the transaction when the listing is not
// in the expected status.
func transitionListing(tx *gorm.DB, listingID uuid.UUID, from, to entity.ListingStatus) error {
	result := tx.Model(&model.ListingModel{}).
		Where("id = ? AND status = ?", listingID, string(from)).
		Updates(map[string]any{
			"status":     string(to),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrListingStatusConflict
	}
	return nil
}

func statusAllowed(status entity.ContractStatus, allowed []entity.ContractStatus) bool {
	for _, s := range allowed {
		if s == status {
			return true
		}
	}
	return false
}
