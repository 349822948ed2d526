package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
	domainerror "github.com/freight-manager/backend/internal/domain/error"
	"github.com/freight-manager/backend/internal/integration/persistence/model"
)

type emailQueueRepository struct {
	db *gorm.DB
}

// NewEmailQueueRepository creates the outbound notice queue backed by the email_queue table.
func NewEmailQueueRepository(db *gorm.DB) adapter.EmailQueueRepository {
	return &emailQueueRepository{
		db: db,
	}
}

func (r *emailQueueRepository) Create(ctx context.Context, job *entity.EmailJob) error {
	if err := r.db.WithContext(ctx).Create(model.EmailQueueModelFromEntity(job)).Error; err != nil {
		return domainerror.NewEmailError(domainerror.ErrCodeEmailQueueFailed, "failed to create email job", err)
	}
	return nil
}

// ClaimPending locks the due rows, skipping the ones another worker holds, and flips them to processing
// before the transaction commits. A processing row whose lease expired is due again.
func (r *emailQueueRepository) ClaimPending(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	var jobs []*entity.EmailJob

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		var models []model.EmailQueueModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("status IN ? AND scheduled_at <= ?", []string{string(entity.EmailStatusPending), string(entity.EmailStatusProcessing)}, now).
			Order("scheduled_at ASC").
			Limit(limit).
			Find(&models).Error
		if err != nil {
			return err
		}
		if len(models) == 0 {
			return nil
		}

		leaseUntil := now.Add(entity.EmailClaimLease)
		err = tx.Model(&model.EmailQueueModel{}).
			Where("id IN ?", emailJobIDs(models)).
			Updates(map[string]any{
				"status":       entity.EmailStatusProcessing,
				"scheduled_at": leaseUntil,
			}).Error
		if err != nil {
			return err
		}

		jobs = make([]*entity.EmailJob, len(models))
		for i := range models {
			jobs[i] = models[i].ToEntity()
			jobs[i].MarkProcessing(leaseUntil)
		}
		return nil
	})
	if err != nil {
		return nil, domainerror.NewStoreError("claim email jobs", err)
	}
	return jobs, nil
}

// Release only touches rows still in processing, so an outcome recorded meanwhile is kept.
func (r *emailQueueRepository) Release(ctx context.Context, jobs []*entity.EmailJob) error {
	if len(jobs) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(jobs))
	for i, job := range jobs {
		ids[i] = job.ID
	}
	err := r.db.WithContext(ctx).Model(&model.EmailQueueModel{}).
		Where("id IN ? AND status = ?", ids, entity.EmailStatusProcessing).
		Updates(map[string]any{
			"status":       entity.EmailStatusPending,
			"scheduled_at": time.Now().UTC(),
		}).Error
	if err != nil {
		return domainerror.NewStoreError("release email jobs", err)
	}

	for _, job := range jobs {
		job.Release()
	}
	return nil
}

func emailJobIDs(models []model.EmailQueueModel) []uuid.UUID {
	ids := make([]uuid.UUID, len(models))
	for i := range models {
		ids[i] = models[i].ID
	}
	return ids
}

func (r *emailQueueRepository) Update(ctx context.Context, job *entity.EmailJob) error {
	if err := r.db.WithContext(ctx).Save(model.EmailQueueModelFromEntity(job)).Error; err != nil {
		return domainerror.NewStoreError("update email job", err)
	}
	return nil
}

func (r *emailQueueRepository) FindByFreightID(ctx context.Context, freightID uuid.UUID) ([]*entity.EmailJob, error) {
	var models []model.EmailQueueModel
	err := r.db.WithContext(ctx).
		Where("freight_id = ?", freightID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, domainerror.NewStoreError("list freight email jobs", err)
	}

	jobs := make([]*entity.EmailJob, len(models))
	for i := range models {
		jobs[i] = models[i].ToEntity()
	}
	return jobs, nil
}
