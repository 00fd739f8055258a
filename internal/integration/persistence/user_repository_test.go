package persistence

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/farmlink/backend/internal/domain/entity"
	domainerror "github.com/farmlink/backend/internal/domain/error"
)

func TestUserRepositoryFindByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	seeded := seedUser(t, db, "farmer@farmlink.test", entity.UserRoleFarmer)

	got, err := repo.FindByEmail(testCtx, "farmer@farmlink.test")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	if got.ID != seeded.ID {
		t.Errorf("ID = %v, want %v", got.ID, seeded.ID)
	}
	if got.Role != entity.UserRoleFarmer {
		t.Errorf("Role = %v, want %v", got.Role, entity.UserRoleFarmer)
	}

	_, err = repo.FindByEmail(testCtx, "nobody@farmlink.test")
	if !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Fatalf("FindByEmail(unknown) error = %v, want %v", err, domainerror.ErrUserNotFound)
	}
}

func TestUserRepositoryExistsByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	seedUser(t, db, "buyer@farmlink.test", entity.UserRoleBuyer)

	exists, err := repo.ExistsByEmail(testCtx, "buyer@farmlink.test")
	if err != nil {
		t.Fatalf("ExistsByEmail() error = %v", err)
	}
	if !exists {
		t.Error("ExistsByEmail() = false, want true")
	}

	exists, err = repo.ExistsByEmail(testCtx, "nobody@farmlink.test")
	if err != nil {
		t.Fatalf("ExistsByEmail() error = %v", err)
	}
	if exists {
		t.Error("ExistsByEmail() = true, want false")
	}
}

func TestUserRepositoryUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := seedUser(t, db, "farmer@farmlink.test", entity.UserRoleFarmer)
	user.Name = "Updated Name"
	user.Location = entity.Location{
		Village:  "Ozar",
		District: "Nashik",
		State:    "Maharashtra",
		Pincode:  "422206",
	}
	user.BankDetails = entity.BankDetails{
		AccountHolder: "Updated Name",
		AccountNumber: "123456789012",
		IFSC:          "SBIN0001234",
		BankName:      "State Bank of India",
	}

	if err := repo.Update(testCtx, user); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := repo.FindByID(testCtx, user.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.Name != "Updated Name" {
		t.Errorf("Name = %q, want %q", got.Name, "Updated Name")
	}
	if got.Location.Pincode != "422206" {
		t.Errorf("Pincode = %q, want %q", got.Location.Pincode, "422206")
	}
	if got.BankDetails.IFSC != "SBIN0001234" {
		t.Errorf("IFSC = %q, want %q", got.BankDetails.IFSC, "SBIN0001234")
	}
}

func TestUserRepositoryUpdatePassword(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := seedUser(t, db, "farmer@farmlink.test", entity.UserRoleFarmer)

	if err := repo.UpdatePassword(testCtx, user.ID, "new-hash"); err != nil {
		t.Fatalf("UpdatePassword() error = %v", err)
	}

	got, err := repo.FindByID(testCtx, user.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.PasswordHash != "new-hash" {
		t.Errorf("PasswordHash = %q, want %q", got.PasswordHash, "new-hash")
	}

	// Updating an unknown user is a no-op, not an error.
	if err := repo.UpdatePassword(testCtx, uuid.New(), "x"); err != nil {
		t.Fatalf("UpdatePassword(unknown) error = %v", err)
	}
}
