package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/farmlink/backend/internal/application/adapter"
	"github.com/farmlink/backend/internal/domain/entity"
	"github.com/farmlink/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository
// interface. The ledger is append-only: this repository exposes no
// update or delete.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create appends a new ledger entry.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByFilter retrieves ledger entries based on filter criteria with pagination.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*entity.TransactionListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.TransactionModel{}).
		Where("user_id = ?", filter.UserID)

	query = applyPeriodFilter(query, filter.Month, filter.Year)
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
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

	var transactionModels []model.TransactionModel
	result := query.
		Order("date DESC, created_at DESC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}

	return &entity.TransactionListResult{
		Transactions: transactions,
		Total:        total,
		Page:         pagination.Page,
		Limit:        pagination.Limit,
		TotalPages:   totalPages,
	}, nil
}

// GetMonthlySummary recomputes the monthly aggregate by summing all
// matching rows. There is no maintained running total.
func (r *transactionRepository) GetMonthlySummary(ctx context.Context, userID uuid.UUID, month, year int) (*entity.MonthlySummary, error) {
	base := r.db.WithContext(ctx).Model(&model.TransactionModel{}).
		Where("user_id = ?", userID)
	base = applyPeriodFilter(base, month, year)

	var incomeResult struct {
		Total decimal.Decimal
	}
	incomeQuery := base.Session(&gorm.Session{}).Where("type = ?", string(entity.TransactionTypeIncome))
	if err := incomeQuery.Select("COALESCE(SUM(amount), 0) as total").Scan(&incomeResult).Error; err != nil {
		return nil, err
	}

	var expenseResult struct {
		Total decimal.Decimal
	}
	expenseQuery := base.Session(&gorm.Session{}).Where("type = ?", string(entity.TransactionTypeExpense))
	if err := expenseQuery.Select("COALESCE(SUM(amount), 0) as total").Scan(&expenseResult).Error; err != nil {
		return nil, err
	}

	var count int64
	countQuery := base.Session(&gorm.Session{})
	if err := countQuery.Count(&count).Error; err != nil {
		return nil, err
	}

	return &entity.MonthlySummary{
		Month:        month,
		Year:         year,
		IncomeTotal:  incomeResult.Total,
		ExpenseTotal: expenseResult.Total,
		NetTotal:     incomeResult.Total.Sub(expenseResult.Total),
		Count:        count,
	}, nil
}

// applyPeriodFilter narrows the query to a month or a year using a
// half-open date range, which stays portable across databases.
func applyPeriodFilter(query *gorm.DB, month, year int) *gorm.DB {
	if year == 0 {
		return query
	}
	if month >= 1 && month <= 12 {
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		return query.Where("date >= ? AND date < ?", start, start.AddDate(0, 1, 0))
	}
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return query.Where("date >= ? AND date < ?", start, start.AddDate(1, 0, 0))
}
