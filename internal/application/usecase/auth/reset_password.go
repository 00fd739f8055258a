// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/farmlink/backend/internal/application/adapter"
	domainerror "github.com/farmlink/backend/internal/domain/error"
)

// ResetPasswordInput represents the input for password reset.
type ResetPasswordInput struct {
	Email       string
	Code        string
	NewPassword string
}

// ResetPasswordOutput represents the output of password reset.
type ResetPasswordOutput struct {
	Message string
}

// ResetPasswordUseCase handles password reset logic.
type ResetPasswordUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	otpService      adapter.OTPService
	tokenService    adapter.TokenService
}

// NewResetPasswordUseCase creates a new ResetPasswordUseCase instance.
func NewResetPasswordUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	otpService adapter.OTPService,
	tokenService adapter.TokenService,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		otpService:      otpService,
		tokenService:    tokenService,
	}
}

// Execute performs the password reset. The one-time code is consumed on
// success and every refresh token of the user is revoked, so stolen
// sessions do not survive a reset.
func (uc *ResetPasswordUseCase) Execute(ctx context.Context, input ResetPasswordInput) (*ResetPasswordOutput, error) {
	// Validate new password strength before consuming the code, so a
	// rejected password does not burn the user's only code
	if err := uc.passwordService.ValidatePasswordStrength(input.NewPassword); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	// Verify and consume the one-time code
	ok, err := uc.otpService.VerifyAndConsume(ctx, input.Email, input.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to verify reset code: %w", err)
	}
	if !ok {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidOTP,
			"invalid or expired reset code",
			domainerror.ErrInvalidOTP,
		)
	}

	// Find user
	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidOTP,
			"invalid or expired reset code",
			domainerror.ErrInvalidOTP,
		)
	}

	// Hash new password
	passwordHash, err := uc.passwordService.HashPassword(input.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Update user password
	if err := uc.userRepo.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		return nil, fmt.Errorf("failed to update user password: %w", err)
	}

	// Revoke every outstanding session
	if err := uc.tokenService.InvalidateAllUserTokens(ctx, user.ID); err != nil {
		// Log but don't fail - password was already reset
		slog.Warn("failed to invalidate user tokens after password reset", "error", err)
	}

	return &ResetPasswordOutput{
		Message: "Password has been successfully reset",
	}, nil
}
