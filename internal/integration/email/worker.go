package email

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
	domainerror "github.com/freight-manager/backend/internal/domain/error"
	"github.com/freight-manager/backend/internal/integration/email/templates"
)

// releaseTimeout bounds handing jobs back once the worker context is gone.
const releaseTimeout = 5 * time.Second

// WorkerConfig holds the polling settings of the Worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig polls every 5s for batches of 10.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
	}
}

// templateData turns the queued key/value data of a job into the value its template expects.
type templateData func(map[string]string) any

var templateDataByType = map[entity.EmailTemplateType]templateData{
	entity.TemplateFreightSettled: func(data map[string]string) any {
		return templates.NewFreightSettledData(data)
	},
}

// Worker delivers queued notices in the background.
type Worker struct {
	queue    adapter.EmailQueueRepository
	sender   adapter.EmailSender
	renderer *templates.Renderer
	config   WorkerConfig
}

// NewWorker creates a new email worker.
func NewWorker(queue adapter.EmailQueueRepository, sender adapter.EmailSender, renderer *templates.Renderer, config WorkerConfig) *Worker {
	if config.PollInterval <= 0 || config.BatchSize <= 0 {
		config = DefaultWorkerConfig()
	}
	return &Worker{
		queue:    queue,
		sender:   sender,
		renderer: renderer,
		config:   config,
	}
}

// Start polls the queue until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Email worker started", "poll_interval", w.config.PollInterval, "batch_size", w.config.BatchSize)

	ticker := time.NewTicker(w.config.PollInterval)
	defer ticker.Stop()

	for {
		w.ProcessNow(ctx)

		select {
		case <-ctx.Done():
			slog.Info("Email worker stopped")
			return
		case <-ticker.C:
		}
	}
}

// ProcessNow delivers one batch of due notices.
func (w *Worker) ProcessNow(ctx context.Context) {
	jobs, err := w.queue.ClaimPending(ctx, w.config.BatchSize)
	if err != nil {
		slog.Error("Failed to claim email jobs", "error", err)
		return
	}

	for i, job := range jobs {
		if ctx.Err() != nil {
			w.release(ctx, jobs[i:])
			return
		}
		w.deliver(ctx, job)
	}
}

// release hands back the claimed jobs a stopping worker did not deliver.
func (w *Worker) release(ctx context.Context, jobs []*entity.EmailJob) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()

	if err := w.queue.Release(ctx, jobs); err != nil {
		slog.Error("Failed to release email jobs", "count", len(jobs), "error", err)
		return
	}
	slog.Info("Email jobs released", "count", len(jobs))
}

func (w *Worker) deliver(ctx context.Context, job *entity.EmailJob) {
	logger := slog.With("job_id", job.ID, "template", job.TemplateType, "freight_id", job.FreightID)

	message, err := w.render(job)
	if err != nil {
		w.fail(ctx, logger, job, err, true)
		return
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      job.RecipientEmail,
		Name:    job.RecipientName,
		Subject: job.Subject,
		HTML:    message.HTML,
		Text:    message.Text,
	})
	if err != nil {
		if ctx.Err() != nil {
			w.release(ctx, []*entity.EmailJob{job})
			return
		}
		var emailErr *domainerror.EmailError
		permanent := errors.As(err, &emailErr) && emailErr.Code == domainerror.ErrCodePermanentEmailFailure
		w.fail(ctx, logger, job, err, permanent)
		return
	}

	job.MarkSent(result.ProviderID)
	if err := w.queue.Update(context.WithoutCancel(ctx), job); err != nil {
		logger.Error("Failed to record sent email", "error", err)
		return
	}
	logger.Info("Email sent", "provider_id", result.ProviderID)
}

func (w *Worker) render(job *entity.EmailJob) (templates.Message, error) {
	build, ok := templateDataByType[job.TemplateType]
	if !ok || !w.renderer.Has(string(job.TemplateType)) {
		return templates.Message{}, domainerror.NewEmailError(
			domainerror.ErrCodeInvalidTemplate,
			"unknown template type "+string(job.TemplateType),
			domainerror.ErrInvalidTemplate,
		)
	}

	message, err := w.renderer.Render(string(job.TemplateType), build(job.TemplateData))
	if err != nil {
		return templates.Message{}, domainerror.NewEmailError(domainerror.ErrCodeTemplateRenderFailed, "failed to render email", err)
	}
	return message, nil
}

func (w *Worker) fail(ctx context.Context, logger *slog.Logger, job *entity.EmailJob, err error, permanent bool) {
	job.MarkFailed(err, permanent)
	if updateErr := w.queue.Update(context.WithoutCancel(ctx), job); updateErr != nil {
		logger.Error("Failed to record email failure", "error", updateErr)
	}

	if job.Status == entity.EmailStatusFailed {
		logger.Warn("Email given up", "attempts", job.Attempts, "error", err)
		return
	}
	logger.Info("Email retry scheduled", "attempts", job.Attempts, "scheduled_at", job.ScheduledAt, "error", err)
}
