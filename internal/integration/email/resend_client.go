package email

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/freight-manager/backend/internal/application/adapter"
	domainerror "github.com/freight-manager/backend/internal/domain/error"
)

// Provider answers that retrying cannot fix: bad key, rejected sender, invalid payload.
var permanentFailureMarkers = []string{"401", "403", "422", "unauthorized", "forbidden", "validation", "invalid"}

// ResendClient sends notices through the Resend API.
type ResendClient struct {
	client *resend.Client
	from   string
}

// NewResendClient creates a Resend sender with a "Name <address>" from header.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	from := (&mail.Address{Name: fromName, Address: fromEmail}).String()
	return &ResendClient{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

// Send delivers one message. Failures come back as EmailError with a permanent or temporary code.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	to := input.To
	if input.Name != "" {
		to = (&mail.Address{Name: input.Name, Address: input.To}).String()
	}

	resp, err := c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	})
	if err != nil {
		return nil, classifySendError(err)
	}

	return &adapter.SendEmailResult{ProviderID: resp.Id}, nil
}

func classifySendError(err error) error {
	message := strings.ToLower(err.Error())
	for _, marker := range permanentFailureMarkers {
		if strings.Contains(message, marker) {
			return domainerror.NewEmailError(
				domainerror.ErrCodePermanentEmailFailure,
				fmt.Sprintf("resend rejected the message (%s)", marker),
				err,
			)
		}
	}
	return domainerror.NewEmailError(domainerror.ErrCodeTemporaryEmailFailure, "resend unavailable", err)
}

var _ adapter.EmailSender = (*ResendClient)(nil)
