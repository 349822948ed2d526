package error

import "errors"

var (
	ErrMissingRecipient = errors.New("missing email recipient")
	ErrInvalidTemplate  = errors.New("invalid email template")
)

// EmailErrorCode groups: 01 queueing, 02 delivery, 03 templates.
type EmailErrorCode string

const (
	ErrCodeEmailQueueFailed EmailErrorCode = "EMAIL-010001"
	ErrCodeMissingRecipient EmailErrorCode = "EMAIL-010002"

	// Permanent failures are not retried.
	ErrCodePermanentEmailFailure EmailErrorCode = "EMAIL-020002"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EMAIL-020003"

	ErrCodeInvalidTemplate      EmailErrorCode = "EMAIL-030001"
	ErrCodeTemplateRenderFailed EmailErrorCode = "EMAIL-030002"
)

// EmailError is returned by the email use cases.
type EmailError = CodedError[EmailErrorCode]

func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return newCoded(code, message, err)
}
