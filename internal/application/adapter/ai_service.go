// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// CategorySuggestionRequest describes an expense to classify.
type CategorySuggestionRequest struct {
	Name        string
	Description string
	Categories  []string
}

// CategorySuggester picks an expense category with a language model.
type CategorySuggester interface {
	// SuggestCategory returns one of request.Categories.
	SuggestCategory(ctx context.Context, request CategorySuggestionRequest) (string, error)

	// IsAvailable checks if the AI service is available and properly configured.
	IsAvailable() bool
}
