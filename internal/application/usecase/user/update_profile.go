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

// UpdateProfileInput represents the input for updating a profile. Nil
// fields are left unchanged.
type UpdateProfileInput struct {
	UserID   uuid.UUID
	Name     *string
	Phone    *string
	Location *entity.Location
}

// UpdateProfileOutput represents the output of updating a profile.
type UpdateProfileOutput struct {
	User *entity.User
}

// UpdateProfileUseCase handles profile update logic.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
	}
}

// Execute applies the requested profile changes.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
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

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Location != nil {
		if input.Location.Pincode != "" && !isValidPincode(input.Location.Pincode) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeInvalidPincode,
				"pincode must be a 6-digit number",
				domainerror.ErrInvalidPincode,
			)
		}
		user.Location = *input.Location
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return &UpdateProfileOutput{User: user}, nil
}

// isValidPincode validates an Indian 6-digit postal code.
func isValidPincode(pincode string) bool {
	pincodeRegex := regexp.MustCompile(`^[1-9][0-9]{5}$`)
	return pincodeRegex.MatchString(pincode)
}
