package persistence

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/farmlink/backend/internal/application/adapter"
	"github.com/farmlink/backend/internal/domain/entity"
)

func seedTransaction(t *testing.T, db *gorm.DB, userID uuid.UUID, transactionType entity.TransactionType, amount string, date time.Time) *entity.Transaction {
	t.Helper()

	repo := NewTransactionRepository(db)
	transaction := entity.NewTransaction(
		userID,
		transactionType,
		"seeds",
		decimal.RequireFromString(amount),
		"test entry",
		nil,
		date,
	)
	if err := repo.Create(testCtx, transaction); err != nil {
		t.Fatalf("failed to seed transaction: %v", err)
	}
	return transaction
}

func TestTransactionRepositoryFindByFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)

	user := seedUser(t, db, "farmer@farmlink.test", entity.UserRoleFarmer)
	other := seedUser(t, db, "buyer@farmlink.test", entity.UserRoleBuyer)

	march := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	april := time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC)
	lastYear := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)

	seedTransaction(t, db, user.ID, entity.TransactionTypeIncome, "1500", march)
	seedTransaction(t, db, user.ID, entity.TransactionTypeExpense, "400", march)
	seedTransaction(t, db, user.ID, entity.TransactionTypeExpense, "250", april)
	seedTransaction(t, db, user.ID, entity.TransactionTypeIncome, "90", lastYear)
	seedTransaction(t, db, other.ID, entity.TransactionTypeIncome, "7777", march)

	pagination := adapter.TransactionPagination{Page: 1, Limit: 20}
	income := entity.TransactionTypeIncome

	tests := []struct {
		name      string
		filter    adapter.TransactionFilter
		wantTotal int64
	}{
		{
			name:      "all entries for the user",
			filter:    adapter.TransactionFilter{UserID: user.ID},
			wantTotal: 4,
		},
		{
			name:      "month filter uses a half-open range",
			filter:    adapter.TransactionFilter{UserID: user.ID, Month: 3, Year: 2026},
			wantTotal: 2,
		},
		{
			name:      "year filter covers all twelve months",
			filter:    adapter.TransactionFilter{UserID: user.ID, Year: 2026},
			wantTotal: 3,
		},
		{
			name:      "type filter",
			filter:    adapter.TransactionFilter{UserID: user.ID, Type: &income},
			wantTotal: 2,
		},
		{
			name:      "type and month combined",
			filter:    adapter.TransactionFilter{UserID: user.ID, Month: 4, Year: 2026, Type: &income},
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := repo.FindByFilter(testCtx, tt.filter, pagination)
			if err != nil {
				t.Fatalf("FindByFilter() error = %v", err)
			}
			if result.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", result.Total, tt.wantTotal)
			}
			if int64(len(result.Transactions)) != tt.wantTotal {
				t.Errorf("len(Transactions) = %d, want %d", len(result.Transactions), tt.wantTotal)
			}
		})
	}
}

func TestTransactionRepositoryFindByFilterPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)

	user := seedUser(t, db, "farmer@farmlink.test", entity.UserRoleFarmer)
	base := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedTransaction(t, db, user.ID, entity.TransactionTypeExpense, "10", base.AddDate(0, 0, i))
	}

	result, err := repo.FindByFilter(testCtx, adapter.TransactionFilter{UserID: user.ID}, adapter.TransactionPagination{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("FindByFilter() error = %v", err)
	}
	if result.Total != 5 {
		t.Errorf("Total = %d, want 5", result.Total)
	}
	if result.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", result.TotalPages)
	}
	if len(result.Transactions) != 2 {
		t.Errorf("len(Transactions) = %d, want 2", len(result.Transactions))
	}
}

func TestTransactionRepositoryGetMonthlySummary(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)

	user := seedUser(t, db, "farmer@farmlink.test", entity.UserRoleFarmer)
	june := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	july := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)

	seedTransaction(t, db, user.ID, entity.TransactionTypeIncome, "2000.50", june)
	seedTransaction(t, db, user.ID, entity.TransactionTypeIncome, "999.50", june)
	seedTransaction(t, db, user.ID, entity.TransactionTypeExpense, "750.25", june)
	seedTransaction(t, db, user.ID, entity.TransactionTypeIncome, "5000", july)

	summary, err := repo.GetMonthlySummary(testCtx, user.ID, 6, 2026)
	if err != nil {
		t.Fatalf("GetMonthlySummary() error = %v", err)
	}

	requireDecimalEqual(t, decimal.RequireFromString("3000"), summary.IncomeTotal, "IncomeTotal")
	requireDecimalEqual(t, decimal.RequireFromString("750.25"), summary.ExpenseTotal, "ExpenseTotal")
	requireDecimalEqual(t, decimal.RequireFromString("2249.75"), summary.NetTotal, "NetTotal")
	if summary.Count != 3 {
		t.Errorf("Count = %d, want 3", summary.Count)
	}
	if summary.Month != 6 || summary.Year != 2026 {
		t.Errorf("period = %d/%d, want 6/2026", summary.Month, summary.Year)
	}
}

func TestTransactionRepositoryGetMonthlySummaryEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)

	user := seedUser(t, db, "farmer@farmlink.test", entity.UserRoleFarmer)

	summary, err := repo.GetMonthlySummary(testCtx, user.ID, 1, 2026)
	if err != nil {
		t.Fatalf("GetMonthlySummary() error = %v", err)
	}
	requireDecimalEqual(t, decimal.Zero, summary.IncomeTotal, "IncomeTotal")
	requireDecimalEqual(t, decimal.Zero, summary.ExpenseTotal, "ExpenseTotal")
	requireDecimalEqual(t, decimal.Zero, summary.NetTotal, "NetTotal")
	if summary.Count != 0 {
		t.Errorf("Count = %d, want 0", summary.Count)
	}
}
