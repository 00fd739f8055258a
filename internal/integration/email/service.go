// Package email provides queued email delivery via Resend.
package email

import (
	"context"

	"github.com/farmlink/backend/internal/application/adapter"
	"github.com/farmlink/backend/internal/domain/entity"
	domainerror "github.com/farmlink/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueuePasswordResetCode queues a password reset code email. Delivery is
// handled asynchronously by the worker, so a provider outage never fails
// the caller.
func (s *Service) QueuePasswordResetCode(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	subject := "Your FarmLink password reset code"

	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"code":       input.Code,
		"expires_in": input.ExpiresIn,
	}

	job := entity.NewEmailJob(
		entity.TemplatePasswordReset,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue password reset email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
