package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
	"github.com/freight-manager/backend/internal/integration/persistence/model"
)

func TestEmailQueueRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewEmailQueueRepository(newTestDB(t))
	freightID := uuid.New()

	due := entity.NewEmailJob(entity.TemplateFreightSettled, "financeiro@cargassul.com.br", "Cargas Sul", "Frete Soja quitado",
		map[string]string{"final_amount": "1000.00"})
	due.FreightID = &freightID
	later := entity.NewEmailJob(entity.TemplateFreightSettled, "contato@rotanorte.com.br", "Rota Norte", "Frete Milho quitado", nil)
	later.ScheduledAt = time.Now().UTC().Add(time.Hour)

	for _, job := range []*entity.EmailJob{due, later} {
		if err := repo.Create(ctx, job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	t.Run("claims only due jobs once", func(t *testing.T) {
		claimed, err := repo.ClaimPending(ctx, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(claimed) != 1 || claimed[0].ID != due.ID {
			t.Fatalf("expected the due job to be claimed, got %d jobs", len(claimed))
		}
		if claimed[0].Status != entity.EmailStatusProcessing {
			t.Errorf("expected processing status, got %s", claimed[0].Status)
		}
		if claimed[0].TemplateData["final_amount"] != "1000.00" {
			t.Errorf("unexpected template data %v", claimed[0].TemplateData)
		}

		again, err := repo.ClaimPending(ctx, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(again) != 0 {
			t.Errorf("expected nothing left to claim, got %d", len(again))
		}
	})

	t.Run("finds the notices of a freight", func(t *testing.T) {
		jobs, err := repo.FindByFreightID(ctx, freightID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(jobs) != 1 || jobs[0].ID != due.ID {
			t.Fatalf("expected the freight notice, got %d jobs", len(jobs))
		}
		if jobs[0].Status != entity.EmailStatusProcessing {
			t.Errorf("expected stored processing status, got %s", jobs[0].Status)
		}
	})

	t.Run("update keeps the delivery outcome", func(t *testing.T) {
		due.MarkFailed(errors.New("timeout"), true)
		if err := repo.Update(ctx, due); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		jobs, err := repo.FindByFreightID(ctx, freightID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if jobs[0].Status != entity.EmailStatusFailed || jobs[0].ProcessedAt == nil || jobs[0].LastError != "timeout" {
			t.Errorf("unexpected stored job %+v", jobs[0])
		}
	})
}

func TestEmailQueueRepository_ClaimLease(t *testing.T) {
	ctx := context.Background()

	newJob := func(t *testing.T, repo adapter.EmailQueueRepository) *entity.EmailJob {
		t.Helper()
		job := entity.NewEmailJob(entity.TemplateFreightSettled, "financeiro@cargassul.com.br", "Cargas Sul", "Frete Soja quitado", nil)
		if err := repo.Create(ctx, job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return job
	}

	claimOne := func(t *testing.T, repo adapter.EmailQueueRepository) []*entity.EmailJob {
		t.Helper()
		claimed, err := repo.ClaimPending(ctx, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return claimed
	}

	t.Run("released jobs are claimed again", func(t *testing.T) {
		repo := NewEmailQueueRepository(newTestDB(t))
		job := newJob(t, repo)

		claimed := claimOne(t, repo)
		if len(claimed) != 1 {
			t.Fatalf("expected 1 claimed job, got %d", len(claimed))
		}
		if err := repo.Release(ctx, claimed); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claimed[0].Status != entity.EmailStatusPending {
			t.Errorf("expected released job to be pending, got %s", claimed[0].Status)
		}

		again := claimOne(t, repo)
		if len(again) != 1 || again[0].ID != job.ID {
			t.Fatalf("expected the released job to be claimed again, got %d jobs", len(again))
		}
	})

	t.Run("release keeps a recorded outcome", func(t *testing.T) {
		repo := NewEmailQueueRepository(newTestDB(t))
		newJob(t, repo)

		claimed := claimOne(t, repo)
		claimed[0].MarkSent("re_123")
		if err := repo.Update(ctx, claimed[0]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.Release(ctx, claimed); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if again := claimOne(t, repo); len(again) != 0 {
			t.Errorf("expected a sent job to stay sent, got %d claimed", len(again))
		}
	})

	t.Run("expired claims are taken over", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewEmailQueueRepository(db)
		job := newJob(t, repo)

		if claimed := claimOne(t, repo); len(claimed) != 1 {
			t.Fatalf("expected 1 claimed job, got %d", len(claimed))
		}
		if held := claimOne(t, repo); len(held) != 0 {
			t.Fatalf("expected the lease to hold, got %d claimed", len(held))
		}

		err := db.Model(&model.EmailQueueModel{}).
			Where("id = ?", job.ID).
			Update("scheduled_at", time.Now().UTC().Add(-time.Minute)).Error
		if err != nil {
			t.Fatalf("failed to expire lease: %v", err)
		}

		taken := claimOne(t, repo)
		if len(taken) != 1 || taken[0].ID != job.ID {
			t.Fatalf("expected the stale job to be claimed, got %d jobs", len(taken))
		}
		if !taken[0].ScheduledAt.After(time.Now().UTC()) {
			t.Errorf("expected a fresh lease, got %s", taken[0].ScheduledAt)
		}
	})
}
