// Package user contains profile-related use cases.
package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/farmlink/backend/internal/application/adapter"
	"github.com/farmlink/backend/internal/domain/entity"
	domainerror "github.com/farmlink/backend/internal/domain/error"
)

// fakeUserRepository serves a single user from memory.
type fakeUserRepository struct {
	user    *entity.User
	updated bool
}

func (r *fakeUserRepository) Create(_ context.Context, user *entity.User) error {
	r.user = user
	return nil
}

func (r *fakeUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if r.user == nil || r.user.ID != id {
		return nil, domainerror.ErrUserNotFound
	}
	return r.user, nil
}

func (r *fakeUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.user == nil || r.user.Email != email {
		return nil, domainerror.ErrUserNotFound
	}
	return r.user, nil
}

func (r *fakeUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return r.user != nil && r.user.Email == email, nil
}

func (r *fakeUserRepository) Update(_ context.Context, user *entity.User) error {
	r.user = user
	r.updated = true
	return nil
}

func (r *fakeUserRepository) UpdatePassword(_ context.Context, _ uuid.UUID, _ string) error {
	return nil
}

var _ adapter.UserRepository = (*fakeUserRepository)(nil)

func validBankDetails() entity.BankDetails {
	return entity.BankDetails{
		AccountHolder: "Ravi Kumar",
		AccountNumber: "123456789012",
		IFSC:          "SBIN0001234",
		BankName:      "State Bank of India",
	}
}

func TestUpdateBankDetailsUseCaseExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("stores valid details", func(t *testing.T) {
		user := entity.NewUser("farmer@farmlink.test", "Ravi Kumar", "", "hash", entity.UserRoleFarmer)
		repo := &fakeUserRepository{user: user}
		useCase := NewUpdateBankDetailsUseCase(repo)

		output, err := useCase.Execute(ctx, UpdateBankDetailsInput{
			UserID:      user.ID,
			BankDetails: validBankDetails(),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.User.BankDetails.IFSC != "SBIN0001234" {
			t.Errorf("IFSC = %q, want %q", output.User.BankDetails.IFSC, "SBIN0001234")
		}
		if !repo.updated {
			t.Error("user was not persisted")
		}
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		repo := &fakeUserRepository{}
		useCase := NewUpdateBankDetailsUseCase(repo)

		_, err := useCase.Execute(ctx, UpdateBankDetailsInput{
			UserID:      uuid.New(),
			BankDetails: validBankDetails(),
		})

		var userErr *domainerror.UserError
		if !errors.As(err, &userErr) || userErr.Code != domainerror.ErrCodeProfileNotFound {
			t.Fatalf("Execute() error = %v, want code %q", err, domainerror.ErrCodeProfileNotFound)
		}
	})

	tests := []struct {
		name   string
		mutate func(*entity.BankDetails)
	}{
		{
			name:   "missing account holder",
			mutate: func(d *entity.BankDetails) { d.AccountHolder = "" },
		},
		{
			name:   "account number too short",
			mutate: func(d *entity.BankDetails) { d.AccountNumber = "12345678" },
		},
		{
			name:   "account number too long",
			mutate: func(d *entity.BankDetails) { d.AccountNumber = "1234567890123456789" },
		},
		{
			name:   "account number with letters",
			mutate: func(d *entity.BankDetails) { d.AccountNumber = "12345678AB" },
		},
		{
			name:   "IFSC without the zero",
			mutate: func(d *entity.BankDetails) { d.IFSC = "SBIN1001234" },
		},
		{
			name:   "IFSC too short",
			mutate: func(d *entity.BankDetails) { d.IFSC = "SBIN0123" },
		},
		{
			name:   "lowercase IFSC",
			mutate: func(d *entity.BankDetails) { d.IFSC = "sbin0001234" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := entity.NewUser("farmer@farmlink.test", "Ravi Kumar", "", "hash", entity.UserRoleFarmer)
			repo := &fakeUserRepository{user: user}
			useCase := NewUpdateBankDetailsUseCase(repo)
			details := validBankDetails()
			tt.mutate(&details)

			_, err := useCase.Execute(ctx, UpdateBankDetailsInput{UserID: user.ID, BankDetails: details})

			var userErr *domainerror.UserError
			if !errors.As(err, &userErr) {
				t.Fatalf("Execute() error = %T, want *domainerror.UserError", err)
			}
			if userErr.Code != domainerror.ErrCodeInvalidBankDetails {
				t.Errorf("Code = %q, want %q", userErr.Code, domainerror.ErrCodeInvalidBankDetails)
			}
			if repo.updated {
				t.Error("invalid details were persisted")
			}
		})
	}
}
