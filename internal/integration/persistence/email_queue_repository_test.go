package persistence

import (
	"errors"
	"testing"
	"time"

	"github.com/farmlink/backend/internal/domain/entity"
)

func newResetJob(email string) *entity.EmailJob {
	return entity.NewEmailJob(
		entity.TemplatePasswordReset,
		email,
		"Test Farmer",
		"Your FarmLink password reset code",
		map[string]interface{}{
			"user_name":  "Test Farmer",
			"code":       "123456",
			"expires_in": "10 minutes",
		},
	)
}

func TestEmailQueueRepositoryCreateAndGetPending(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmailQueueRepository(db)

	job := newResetJob("farmer@farmlink.test")
	if err := repo.Create(testCtx, job); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	jobs, err := repo.GetPendingJobs(testCtx, 10)
	if err != nil {
		t.Fatalf("GetPendingJobs() error = %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("pending jobs = %d, want 1", len(jobs))
	}

	got := jobs[0]
	if got.ID != job.ID {
		t.Errorf("ID = %s, want %s", got.ID, job.ID)
	}
	if got.TemplateType != entity.TemplatePasswordReset {
		t.Errorf("TemplateType = %s, want %s", got.TemplateType, entity.TemplatePasswordReset)
	}
	if got.RecipientEmail != "farmer@farmlink.test" {
		t.Errorf("RecipientEmail = %s, want farmer@farmlink.test", got.RecipientEmail)
	}
	if got.TemplateData["code"] != "123456" {
		t.Errorf("TemplateData[code] = %v, want 123456", got.TemplateData["code"])
	}
	if got.Status != entity.EmailStatusPending {
		t.Errorf("Status = %s, want pending", got.Status)
	}
}

func TestEmailQueueRepositoryGetPendingSkipsFutureAndNonPending(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmailQueueRepository(db)

	ready := newResetJob("ready@farmlink.test")
	if err := repo.Create(testCtx, ready); err != nil {
		t.Fatalf("Create(ready) error = %v", err)
	}

	future := newResetJob("future@farmlink.test")
	future.ScheduledAt = time.Now().UTC().Add(1 * time.Hour)
	if err := repo.Create(testCtx, future); err != nil {
		t.Fatalf("Create(future) error = %v", err)
	}

	sent := newResetJob("sent@farmlink.test")
	sent.MarkSent("resend-1")
	if err := repo.Create(testCtx, sent); err != nil {
		t.Fatalf("Create(sent) error = %v", err)
	}

	jobs, err := repo.GetPendingJobs(testCtx, 10)
	if err != nil {
		t.Fatalf("GetPendingJobs() error = %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("pending jobs = %d, want 1", len(jobs))
	}
	if jobs[0].RecipientEmail != "ready@farmlink.test" {
		t.Errorf("pending job recipient = %s, want ready@farmlink.test", jobs[0].RecipientEmail)
	}
}

func TestEmailQueueRepositoryGetPendingHonorsLimitAndOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmailQueueRepository(db)

	base := time.Now().UTC().Add(-10 * time.Minute)
	first := newResetJob("first@farmlink.test")
	first.ScheduledAt = base
	second := newResetJob("second@farmlink.test")
	second.ScheduledAt = base.Add(1 * time.Minute)
	third := newResetJob("third@farmlink.test")
	third.ScheduledAt = base.Add(2 * time.Minute)

	// Create out of order to exercise the scheduled_at sort
	for _, job := range []*entity.EmailJob{third, first, second} {
		if err := repo.Create(testCtx, job); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	jobs, err := repo.GetPendingJobs(testCtx, 2)
	if err != nil {
		t.Fatalf("GetPendingJobs() error = %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("pending jobs = %d, want 2", len(jobs))
	}
	if jobs[0].RecipientEmail != "first@farmlink.test" || jobs[1].RecipientEmail != "second@farmlink.test" {
		t.Errorf("pending order = [%s %s], want oldest scheduled first",
			jobs[0].RecipientEmail, jobs[1].RecipientEmail)
	}
}

func TestEmailQueueRepositoryUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmailQueueRepository(db)

	job := newResetJob("farmer@farmlink.test")
	if err := repo.Create(testCtx, job); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("sent jobs leave the pending set", func(t *testing.T) {
		job.MarkSent("resend-42")
		if err := repo.Update(testCtx, job); err != nil {
			t.Fatalf("Update() error = %v", err)
		}

		jobs, err := repo.GetPendingJobs(testCtx, 10)
		if err != nil {
			t.Fatalf("GetPendingJobs() error = %v", err)
		}
		if len(jobs) != 0 {
			t.Errorf("pending jobs = %d, want 0 after send", len(jobs))
		}
	})

	t.Run("failed attempt is persisted", func(t *testing.T) {
		retry := newResetJob("retry@farmlink.test")
		if err := repo.Create(testCtx, retry); err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		retry.MarkFailed(errors.New("boom"), false)
		retry.ScheduledAt = time.Now().UTC().Add(-1 * time.Second)
		if err := repo.Update(testCtx, retry); err != nil {
			t.Fatalf("Update() error = %v", err)
		}

		jobs, err := repo.GetPendingJobs(testCtx, 10)
		if err != nil {
			t.Fatalf("GetPendingJobs() error = %v", err)
		}
		if len(jobs) != 1 {
			t.Fatalf("pending jobs = %d, want 1", len(jobs))
		}
		if jobs[0].Attempts != 1 {
			t.Errorf("Attempts = %d, want 1", jobs[0].Attempts)
		}
		if jobs[0].LastError != "boom" {
			t.Errorf("LastError = %q, want boom", jobs[0].LastError)
		}
	})
}

func TestEmailQueueRepositoryDeleteOldSentJobs(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmailQueueRepository(db)

	old := newResetJob("old@farmlink.test")
	old.MarkSent("resend-old")
	past := time.Now().UTC().AddDate(0, 0, -45)
	old.ProcessedAt = &past
	if err := repo.Create(testCtx, old); err != nil {
		t.Fatalf("Create(old) error = %v", err)
	}

	recent := newResetJob("recent@farmlink.test")
	recent.MarkSent("resend-recent")
	if err := repo.Create(testCtx, recent); err != nil {
		t.Fatalf("Create(recent) error = %v", err)
	}

	pending := newResetJob("pending@farmlink.test")
	if err := repo.Create(testCtx, pending); err != nil {
		t.Fatalf("Create(pending) error = %v", err)
	}

	deleted, err := repo.DeleteOldSentJobs(testCtx, 30)
	if err != nil {
		t.Fatalf("DeleteOldSentJobs() error = %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}

	var remaining int64
	if err := db.Table("email_queue").Count(&remaining).Error; err != nil {
		t.Fatalf("failed to count remaining jobs: %v", err)
	}
	if remaining != 2 {
		t.Errorf("remaining jobs = %d, want 2", remaining)
	}
}
