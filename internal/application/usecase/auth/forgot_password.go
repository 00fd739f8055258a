// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/farmlink/backend/internal/application/adapter"
)

// ForgotPasswordInput represents the input for password reset request.
type ForgotPasswordInput struct {
	Email string
}

// ForgotPasswordOutput represents the output of password reset request.
type ForgotPasswordOutput struct {
	Message string
}

// ForgotPasswordUseCase handles password reset request logic.
type ForgotPasswordUseCase struct {
	userRepo     adapter.UserRepository
	otpService   adapter.OTPService
	emailService adapter.EmailService
	otpExpiresIn string
}

// NewForgotPasswordUseCase creates a new ForgotPasswordUseCase instance.
// otpExpiresIn is the human-readable validity window shown in the email,
// e.g. "10 minutes".
func NewForgotPasswordUseCase(
	userRepo adapter.UserRepository,
	otpService adapter.OTPService,
	emailService adapter.EmailService,
	otpExpiresIn string,
) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		userRepo:     userRepo,
		otpService:   otpService,
		emailService: emailService,
		otpExpiresIn: otpExpiresIn,
	}
}

// Execute generates a one-time reset code and queues an email carrying it.
// Delivery is asynchronous, so a provider outage does not fail the request.
// The response is the same whether or not the email is registered, to
// prevent account enumeration.
func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, input ForgotPasswordInput) (*ForgotPasswordOutput, error) {
	message := "If the email is registered, a reset code has been sent"

	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		// Unknown email gets the same response as a known one
		return &ForgotPasswordOutput{Message: message}, nil
	}

	code, err := uc.otpService.Generate(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate reset code: %w", err)
	}

	if uc.emailService != nil {
		err := uc.emailService.QueuePasswordResetCode(ctx, adapter.QueuePasswordResetInput{
			UserEmail: user.Email,
			UserName:  user.Name,
			Code:      code,
			ExpiresIn: uc.otpExpiresIn,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to queue reset code email: %w", err)
		}
	} else {
		// No email provider configured (local development)
		slog.Info("password reset code generated", "email", user.Email)
	}

	return &ForgotPasswordOutput{Message: message}, nil
}
