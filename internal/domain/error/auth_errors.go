package error

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	// ErrInvalidCredentials covers both unknown emails and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidRole        = errors.New("invalid role")
	ErrDriverLinkRequired = errors.New("driver users must reference a driver")
	ErrWeakPassword       = errors.New("password does not meet minimum requirements")
	ErrInvalidEmail       = errors.New("invalid email format")
)

// AuthErrorCode groups: 01 accounts, 02 login, 03 tokens, 04 authorization.
type AuthErrorCode string

const (
	ErrCodeEmailExists        AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidRole        AuthErrorCode = "AUTH-010002"
	ErrCodeWeakPassword       AuthErrorCode = "AUTH-010003"
	ErrCodeInvalidEmail       AuthErrorCode = "AUTH-010004"
	ErrCodeMissingFields      AuthErrorCode = "AUTH-010005"
	ErrCodeDriverLinkRequired AuthErrorCode = "AUTH-010006"

	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-020002"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-020003"

	ErrCodeInvalidToken AuthErrorCode = "AUTH-030001"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-030002"
	ErrCodeMissingToken AuthErrorCode = "AUTH-030003"

	ErrCodeForbidden AuthErrorCode = "AUTH-040001"
)

// AuthError is returned by the auth use cases.
type AuthError = CodedError[AuthErrorCode]

func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return newCoded(code, message, err)
}
