// Package email provides queued email delivery via Resend.
package email

import (
	"context"
	"testing"

	"github.com/farmlink/backend/internal/application/adapter"
	"github.com/farmlink/backend/internal/domain/entity"
)

func TestServiceQueuePasswordResetCode(t *testing.T) {
	ctx := context.Background()
	queue := newFakeEmailQueue()
	service := NewService(queue)

	err := service.QueuePasswordResetCode(ctx, adapter.QueuePasswordResetInput{
		UserEmail: "farmer@farmlink.test",
		UserName:  "Ravi",
		Code:      "482913",
		ExpiresIn: "10 minutes",
	})
	if err != nil {
		t.Fatalf("QueuePasswordResetCode() error = %v", err)
	}

	if len(queue.jobs) != 1 {
		t.Fatalf("queued jobs = %d, want 1", len(queue.jobs))
	}
	for _, job := range queue.jobs {
		if job.TemplateType != entity.TemplatePasswordReset {
			t.Errorf("TemplateType = %s, want %s", job.TemplateType, entity.TemplatePasswordReset)
		}
		if job.RecipientEmail != "farmer@farmlink.test" {
			t.Errorf("RecipientEmail = %s, want farmer@farmlink.test", job.RecipientEmail)
		}
		if job.Status != entity.EmailStatusPending {
			t.Errorf("Status = %s, want pending", job.Status)
		}
		if job.TemplateData["code"] != "482913" {
			t.Errorf("TemplateData[code] = %v, want 482913", job.TemplateData["code"])
		}
		if job.TemplateData["user_name"] != "Ravi" {
			t.Errorf("TemplateData[user_name] = %v, want Ravi", job.TemplateData["user_name"])
		}
	}
}
