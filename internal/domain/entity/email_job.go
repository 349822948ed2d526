package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailStatus represents the delivery state of a queued notice.
type EmailStatus string

const (
	EmailStatusPending    EmailStatus = "pending"
	EmailStatusProcessing EmailStatus = "processing"
	EmailStatusSent       EmailStatus = "sent"
	EmailStatusFailed     EmailStatus = "failed"
)

// EmailTemplateType names the template a notice is rendered with.
type EmailTemplateType string

const (
	TemplateFreightSettled EmailTemplateType = "freight_settled"
)

const defaultEmailMaxAttempts = 3

// EmailClaimLease bounds how long a claimed job may stay in processing before it is claimed again.
const EmailClaimLease = 5 * time.Minute

// EmailJob is a notice waiting in the outbound queue.
type EmailJob struct {
	ID             uuid.UUID
	TemplateType   EmailTemplateType
	FreightID      *uuid.UUID
	RecipientEmail string
	RecipientName  string
	Subject        string
	TemplateData   map[string]string
	Status         EmailStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ProviderID     string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewEmailJob creates a pending EmailJob due immediately.
func NewEmailJob(templateType EmailTemplateType, recipientEmail, recipientName, subject string, data map[string]string) *EmailJob {
	now := time.Now().UTC()
	if data == nil {
		data = map[string]string{}
	}
	return &EmailJob{
		ID:             uuid.New(),
		TemplateType:   templateType,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        subject,
		TemplateData:   data,
		Status:         EmailStatusPending,
		MaxAttempts:    defaultEmailMaxAttempts,
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// IsPending reports whether the job still waits for delivery.
func (e *EmailJob) IsPending() bool {
	return e.Status == EmailStatusPending
}

// Refresh replaces the content of a pending notice and makes it due again with a fresh retry budget.
func (e *EmailJob) Refresh(recipientEmail, recipientName, subject string, data map[string]string) {
	e.RecipientEmail = recipientEmail
	e.RecipientName = recipientName
	e.Subject = subject
	e.TemplateData = data
	e.Attempts = 0
	e.LastError = ""
	e.ScheduledAt = time.Now().UTC()
}

// MarkProcessing claims the job for delivery. Until leaseUntil passes no other claim takes it.
func (e *EmailJob) MarkProcessing(leaseUntil time.Time) {
	e.Status = EmailStatusProcessing
	e.ScheduledAt = leaseUntil
}

// Release hands a claimed job back to the queue, due right away.
func (e *EmailJob) Release() {
	e.Status = EmailStatusPending
	e.ScheduledAt = time.Now().UTC()
}

// MarkSent records a successful delivery.
func (e *EmailJob) MarkSent(providerID string) {
	now := time.Now().UTC()
	e.Status = EmailStatusSent
	e.ProviderID = providerID
	e.ProcessedAt = &now
}

// MarkFailed records a failed attempt. The job goes back to pending with a backoff
// until it runs out of attempts or the failure is permanent.
func (e *EmailJob) MarkFailed(err error, permanent bool) {
	e.Attempts++
	e.LastError = err.Error()

	now := time.Now().UTC()
	if permanent || e.Attempts >= e.MaxAttempts {
		e.Status = EmailStatusFailed
		e.ProcessedAt = &now
		return
	}

	e.Status = EmailStatusPending
	e.ScheduledAt = now.Add(e.retryDelay())
}

// retryDelay is 1min, 5min, then 15min.
func (e *EmailJob) retryDelay() time.Duration {
	switch {
	case e.Attempts <= 1:
		return time.Minute
	case e.Attempts == 2:
		return 5 * time.Minute
	default:
		return 15 * time.Minute
	}
}
