package adapter

import (
	"context"

	"github.com/google/uuid"
)

// SendEmailInput is a rendered message ready for the provider.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult carries the provider message id.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender delivers rendered messages through an external provider.
type EmailSender interface {
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService queues outbound notices.
type EmailService interface {
	// QueueFreightSettledEmail queues the settlement notice for the broker of a freight.
	// A notice of the same freight that is still pending is refreshed instead of duplicated.
	QueueFreightSettledEmail(ctx context.Context, input QueueFreightSettledInput) error
}

// QueueFreightSettledInput holds the freight figures shown in a settlement notice.
// Amounts are already formatted with two decimals.
type QueueFreightSettledInput struct {
	FreightID    uuid.UUID
	BrokerName   string
	BrokerEmail  string
	FreightName  string
	Origin       string
	Destination  string
	TotalValue   string
	AdvanceTotal string
	FinalAmount  string
}
