package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/domain/entity"
)

// EmailQueueRepository persists the outbound notice queue.
type EmailQueueRepository interface {
	Create(ctx context.Context, job *entity.EmailJob) error

	// ClaimPending marks up to limit due jobs as processing and returns them. Due jobs are the
	// pending ones past their schedule and the processing ones whose claim lease ran out.
	// A claimed job is not returned to another caller while its lease holds.
	ClaimPending(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// Release puts claimed jobs back to pending so the next claim picks them up.
	Release(ctx context.Context, jobs []*entity.EmailJob) error

	Update(ctx context.Context, job *entity.EmailJob) error

	// FindByFreightID lists the notices of a freight, newest first.
	FindByFreightID(ctx context.Context, freightID uuid.UUID) ([]*entity.EmailJob, error)
}
