package expense

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
	domainerror "github.com/freight-manager/backend/internal/domain/error"
)

// FallbackCategory is returned when no suggestion can be made.
const FallbackCategory = "Outros"

// SuggestCategoryInput represents the expense to classify.
type SuggestCategoryInput struct {
	Name        string
	Description string
}

// SuggestCategoryOutput represents the suggested category.
type SuggestCategoryOutput struct {
	Category string
	// FromAI is false when the fallback was used.
	FromAI bool
}

// SuggestCategoryUseCase picks an expense category from the lookup table.
type SuggestCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	suggester    adapter.CategorySuggester
}

// NewSuggestCategoryUseCase creates a new SuggestCategoryUseCase instance.
func NewSuggestCategoryUseCase(categoryRepo adapter.CategoryRepository, suggester adapter.CategorySuggester) *SuggestCategoryUseCase {
	return &SuggestCategoryUseCase{
		categoryRepo: categoryRepo,
		suggester:    suggester,
	}
}

// Execute suggests a category. AI failures fall back to FallbackCategory.
func (uc *SuggestCategoryUseCase) Execute(ctx context.Context, input SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeMissingEntryName,
			"name is required",
			domainerror.ErrMissingEntryName,
		)
	}

	fallback := &SuggestCategoryOutput{Category: FallbackCategory}
	if uc.suggester == nil || !uc.suggester.IsAvailable() {
		return fallback, nil
	}

	categories, err := uc.categoryRepo.FindByKind(ctx, entity.CategoryKindExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense categories: %w", err)
	}
	if len(categories) == 0 {
		return fallback, nil
	}

	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}

	suggestion, err := uc.suggester.SuggestCategory(ctx, adapter.CategorySuggestionRequest{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Categories:  names,
	})
	if err != nil {
		failure := classifySuggestionError(err)
		slog.Warn("Category suggestion failed",
			"error", err,
			"reason", failure.Code,
			"retryable", failure.Retryable,
		)
		return fallback, nil
	}

	for _, n := range names {
		if strings.EqualFold(n, strings.TrimSpace(suggestion)) {
			return &SuggestCategoryOutput{Category: n, FromAI: true}, nil
		}
	}

	slog.Warn("Category suggestion outside lookup table", "suggestion", suggestion)
	return fallback, nil
}
