// Package user contains profile-related use cases.
package user

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/farmlink/backend/internal/application/adapter"
	"github.com/farmlink/backend/internal/domain/entity"
	domainerror "github.com/farmlink/backend/internal/domain/error"
)

// UpdateBankDetailsInput represents the input for updating bank details.
type UpdateBankDetailsInput struct {
	UserID      uuid.UUID
	BankDetails entity.BankDetails
}

// UpdateBankDetailsOutput represents the output of updating bank details.
type UpdateBankDetailsOutput struct {
	User *entity.User
}

// UpdateBankDetailsUseCase handles payout account update logic.
type UpdateBankDetailsUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateBankDetailsUseCase creates a new UpdateBankDetailsUseCase instance.
func NewUpdateBankDetailsUseCase(userRepo adapter.UserRepository) *UpdateBankDetailsUseCase {
	return &UpdateBankDetailsUseCase{
		userRepo: userRepo,
	}
}

// Execute validates and stores the user's payout account details.
func (uc *UpdateBankDetailsUseCase) Execute(ctx context.Context, input UpdateBankDetailsInput) (*UpdateBankDetailsOutput, error) {
	if err := validateBankDetails(input.BankDetails); err != nil {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeInvalidBankDetails,
			err.Error(),
			domainerror.ErrInvalidBankDetails,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeProfileNotFound,
				"profile not found",
				domainerror.ErrProfileNotFound,
			)
		}
		return nil, err
	}

	user.BankDetails = input.BankDetails
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update bank details: %w", err)
	}

	return &UpdateBankDetailsOutput{User: user}, nil
}

// ifscRegex matches the 11-character IFSC format: 4 letters, a zero,
// then 6 alphanumerics.
var ifscRegex = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)

func validateBankDetails(details entity.BankDetails) error {
	if details.AccountHolder == "" {
		return errors.New("account holder name is required")
	}
	if len(details.AccountNumber) < 9 || len(details.AccountNumber) > 18 {
		return errors.New("account number must be between 9 and 18 digits")
	}
	for _, c := range details.AccountNumber {
		if c < '0' || c > '9' {
			return errors.New("account number must contain only digits")
		}
	}
	if !ifscRegex.MatchString(details.IFSC) {
		return errors.New("invalid IFSC code")
	}
	return nil
}
