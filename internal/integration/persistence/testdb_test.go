package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/farmlink/backend/internal/domain/entity"
	"github.com/farmlink/backend/internal/integration/persistence/model"
)

// newTestDB opens an isolated in-memory SQLite database and migrates
// the full schema. SetMaxOpenConns(1) keeps every statement on the
// same in-memory connection.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect gorm: %v", err)
	}

	err = dbConn.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.ListingModel{},
		&model.ContractModel{},
		&model.TransactionModel{},
		&model.EmailJobModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	t.Cleanup(func() {
		_ = dbSQL.Close()
	})

	return dbConn
}

func seedUser(t *testing.T, db *gorm.DB, email string, role entity.UserRole) *entity.User {
	t.Helper()

	user := entity.NewUser(email, "Test "+string(role), "9876543210", "hashed-password", role)
	if err := db.Create(model.UserFromEntity(user)).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedListing(t *testing.T, db *gorm.DB, farmerID uuid.UUID, cropType string, status entity.ListingStatus) *entity.Listing {
	t.Helper()

	listing := entity.NewListing(
		farmerID,
		cropType,
		decimal.RequireFromString("100"),
		"kg",
		decimal.RequireFromString("20"),
		nil,
		[]string{"https://example.com/crop.jpg"},
		"Nashik",
		"Maharashtra",
	)
	listing.Status = status
	if err := db.Create(model.ListingFromEntity(listing)).Error; err != nil {
		t.Fatalf("failed to seed listing: %v", err)
	}
	return listing
}

func seedContract(t *testing.T, db *gorm.DB, listing *entity.Listing, buyerID uuid.UUID, status entity.ContractStatus) *entity.Contract {
	t.Helper()

	contract := entity.NewContract(listing, buyerID, "Payment on delivery")
	contract.Status = status
	if err := db.Create(model.ContractFromEntity(contract)).Error; err != nil {
		t.Fatalf("failed to seed contract: %v", err)
	}
	return contract
}

func reloadListing(t *testing.T, db *gorm.DB, id uuid.UUID) *entity.Listing {
	t.Helper()

	var listingModel model.ListingModel
	if err := db.Where("id = ?", id).First(&listingModel).Error; err != nil {
		t.Fatalf("failed to reload listing: %v", err)
	}
	return listingModel.ToEntity()
}

func contractTransactions(t *testing.T, db *gorm.DB, contractID uuid.UUID) []*entity.Transaction {
	t.Helper()

	var transactionModels []model.TransactionModel
	if err := db.Where("contract_id = ?", contractID).Order("type").Find(&transactionModels).Error; err != nil {
		t.Fatalf("failed to load contract transactions: %v", err)
	}
	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions
}

var testCtx = context.Background()

// requireDecimalEqual fails the test when two decimals differ.
func requireDecimalEqual(t *testing.T, want, got decimal.Decimal, label string) {
	t.Helper()
	if !want.Equal(got) {
		t.Errorf("%s = %s, want %s", label, got.String(), want.String())
	}
}
