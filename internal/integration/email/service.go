// Package email queues and delivers the settlement notices sent to brokers.
package email

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
	domainerror "github.com/freight-manager/backend/internal/domain/error"
)

// Service writes notices to the outbound queue; the Worker delivers them.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueFreightSettledEmail queues the settlement notice of a freight for its broker.
func (s *Service) QueueFreightSettledEmail(ctx context.Context, input adapter.QueueFreightSettledInput) error {
	if input.BrokerEmail == "" {
		return domainerror.NewEmailError(
			domainerror.ErrCodeMissingRecipient,
			"broker has no email address",
			domainerror.ErrMissingRecipient,
		)
	}

	subject := fmt.Sprintf("Frete %s quitado", input.FreightName)
	data := map[string]string{
		"broker_name":   input.BrokerName,
		"freight_name":  input.FreightName,
		"origin":        input.Origin,
		"destination":   input.Destination,
		"total_value":   input.TotalValue,
		"advance_total": input.AdvanceTotal,
		"final_amount":  input.FinalAmount,
		"app_url":       s.appBaseURL,
	}

	pending, err := s.pendingNotice(ctx, input)
	if err != nil {
		return err
	}
	if pending != nil {
		pending.Refresh(input.BrokerEmail, input.BrokerName, subject, data)
		if err := s.queue.Update(ctx, pending); err != nil {
			return domainerror.NewEmailError(domainerror.ErrCodeEmailQueueFailed, "failed to refresh settlement notice", err)
		}
		return nil
	}

	job := entity.NewEmailJob(entity.TemplateFreightSettled, input.BrokerEmail, input.BrokerName, subject, data)
	if input.FreightID != uuid.Nil {
		freightID := input.FreightID
		job.FreightID = &freightID
	}

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(domainerror.ErrCodeEmailQueueFailed, "failed to queue settlement notice", err)
	}
	return nil
}

// pendingNotice returns the undelivered settlement notice of the freight, if any.
func (s *Service) pendingNotice(ctx context.Context, input adapter.QueueFreightSettledInput) (*entity.EmailJob, error) {
	if input.FreightID == uuid.Nil {
		return nil, nil
	}

	jobs, err := s.queue.FindByFreightID(ctx, input.FreightID)
	if err != nil {
		return nil, domainerror.NewEmailError(domainerror.ErrCodeEmailQueueFailed, "failed to look up settlement notices", err)
	}
	for _, job := range jobs {
		if job.TemplateType == entity.TemplateFreightSettled && job.IsPending() {
			return job, nil
		}
	}
	return nil, nil
}

var _ adapter.EmailService = (*Service)(nil)
