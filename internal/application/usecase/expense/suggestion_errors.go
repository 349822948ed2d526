package expense

import (
	"context"
	"errors"
	"strings"
)

// Reason codes logged when a category suggestion falls back.
const (
	SuggestionUnavailable  = "AI_SERVICE_UNAVAILABLE"
	SuggestionRateLimited  = "AI_RATE_LIMITED"
	SuggestionAuthError    = "AI_AUTH_ERROR"
	SuggestionTimeout      = "AI_TIMEOUT"
	SuggestionParseError   = "AI_PARSE_ERROR"
	SuggestionUnknownError = "AI_UNKNOWN_ERROR"
)

// suggestionFailure describes why the language model could not answer.
type suggestionFailure struct {
	Code      string
	Retryable bool
}

// classifySuggestionError maps a suggester error to a reason code.
func classifySuggestionError(err error) suggestionFailure {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return suggestionFailure{Code: SuggestionTimeout, Retryable: true}
	}

	errStr := strings.ToLower(err.Error())

	switch {
	case containsAny(errStr, "rate limit", "quota", "429", "resource exhausted"):
		return suggestionFailure{Code: SuggestionRateLimited, Retryable: true}
	case containsAny(errStr, "401", "403", "invalid api key", "unauthorized", "authentication"):
		return suggestionFailure{Code: SuggestionAuthError, Retryable: false}
	case containsAny(errStr, "connection", "network", "dial", "timeout", "unavailable", "503"):
		return suggestionFailure{Code: SuggestionUnavailable, Retryable: true}
	case containsAny(errStr, "parse", "json", "unmarshal", "decode"):
		return suggestionFailure{Code: SuggestionParseError, Retryable: true}
	default:
		return suggestionFailure{Code: SuggestionUnknownError, Retryable: true}
	}
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
