package expense

import (
	"context"
	"errors"
	"testing"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
	domainerror "github.com/freight-manager/backend/internal/domain/error"
)

type fakeCategoryRepo struct {
	categories []*entity.Category
	err        error
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	r.categories = append(r.categories, category)
	return nil
}

func (r *fakeCategoryRepo) FindByKind(ctx context.Context, kind entity.CategoryKind) ([]*entity.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Category
	for _, c := range r.categories {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) ExistsByKindAndName(ctx context.Context, kind entity.CategoryKind, name string) (bool, error) {
	for _, c := range r.categories {
		if c.Kind == kind && c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

type fakeSuggester struct {
	available bool
	answer    string
	err       error
	request   adapter.CategorySuggestionRequest
	calls     int
}

func (s *fakeSuggester) SuggestCategory(ctx context.Context, request adapter.CategorySuggestionRequest) (string, error) {
	s.calls++
	s.request = request
	return s.answer, s.err
}

func (s *fakeSuggester) IsAvailable() bool {
	return s.available
}

func seededCategories() *fakeCategoryRepo {
	repo := &fakeCategoryRepo{}
	for kind, names := range entity.DefaultCategories() {
		for _, name := range names {
			repo.categories = append(repo.categories, entity.NewCategory(kind, name))
		}
	}
	return repo
}

func TestSuggestCategoryUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the matching lookup name", func(t *testing.T) {
		suggester := &fakeSuggester{available: true, answer: "  combustível "}
		uc := NewSuggestCategoryUseCase(seededCategories(), suggester)

		output, err := uc.Execute(ctx, SuggestCategoryInput{Name: "Diesel posto BR", Description: "abastecimento"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category != "Combustível" {
			t.Errorf("expected Combustível, got %q", output.Category)
		}
		if !output.FromAI {
			t.Error("expected FromAI to be true")
		}
		if len(suggester.request.Categories) != len(entity.DefaultCategories()[entity.CategoryKindExpense]) {
			t.Errorf("expected only expense categories to be offered, got %v", suggester.request.Categories)
		}
		if suggester.request.Description != "abastecimento" {
			t.Errorf("expected description to be forwarded, got %q", suggester.request.Description)
		}
	})

	t.Run("falls back when the suggester is not configured", func(t *testing.T) {
		suggester := &fakeSuggester{available: false}
		uc := NewSuggestCategoryUseCase(seededCategories(), suggester)

		output, err := uc.Execute(ctx, SuggestCategoryInput{Name: "Diesel"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category != FallbackCategory || output.FromAI {
			t.Errorf("expected fallback, got %+v", output)
		}
		if suggester.calls != 0 {
			t.Errorf("expected suggester not to be called, got %d calls", suggester.calls)
		}
	})

	t.Run("falls back with a nil suggester", func(t *testing.T) {
		uc := NewSuggestCategoryUseCase(seededCategories(), nil)

		output, err := uc.Execute(ctx, SuggestCategoryInput{Name: "Diesel"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category != FallbackCategory {
			t.Errorf("expected fallback, got %q", output.Category)
		}
	})

	t.Run("falls back on suggester error", func(t *testing.T) {
		suggester := &fakeSuggester{available: true, err: errors.New("HTTP 429: too many requests")}
		uc := NewSuggestCategoryUseCase(seededCategories(), suggester)

		output, err := uc.Execute(ctx, SuggestCategoryInput{Name: "Diesel"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category != FallbackCategory || output.FromAI {
			t.Errorf("expected fallback, got %+v", output)
		}
	})

	t.Run("falls back on an invented category", func(t *testing.T) {
		suggester := &fakeSuggester{available: true, answer: "Hospedagem"}
		uc := NewSuggestCategoryUseCase(seededCategories(), suggester)

		output, err := uc.Execute(ctx, SuggestCategoryInput{Name: "Hotel"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category != FallbackCategory {
			t.Errorf("expected fallback, got %q", output.Category)
		}
	})

	t.Run("falls back when no expense category exists", func(t *testing.T) {
		suggester := &fakeSuggester{available: true, answer: "Pneus"}
		uc := NewSuggestCategoryUseCase(&fakeCategoryRepo{}, suggester)

		output, err := uc.Execute(ctx, SuggestCategoryInput{Name: "Pneu"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category != FallbackCategory || suggester.calls != 0 {
			t.Errorf("expected fallback without calling the suggester, got %+v (%d calls)", output, suggester.calls)
		}
	})

	t.Run("requires a name", func(t *testing.T) {
		uc := NewSuggestCategoryUseCase(seededCategories(), &fakeSuggester{available: true})

		_, err := uc.Execute(ctx, SuggestCategoryInput{Name: "   "})

		var ledgerErr *domainerror.LedgerError
		if !errors.As(err, &ledgerErr) {
			t.Fatalf("expected LedgerError, got %v", err)
		}
		if ledgerErr.Code != domainerror.ErrCodeMissingEntryName {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingEntryName, ledgerErr.Code)
		}
	})

	t.Run("propagates category lookup failures", func(t *testing.T) {
		repo := &fakeCategoryRepo{err: domainerror.NewStoreError("find categories", errors.New("connection refused"))}
		uc := NewSuggestCategoryUseCase(repo, &fakeSuggester{available: true})

		_, err := uc.Execute(ctx, SuggestCategoryInput{Name: "Diesel"})
		if !errors.Is(err, domainerror.ErrStore) {
			t.Errorf("expected store error, got %v", err)
		}
	})
}

func TestClassifySuggestionError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode string
		expectRetry  bool
	}{
		{name: "context deadline exceeded", err: context.DeadlineExceeded, expectedCode: SuggestionTimeout, expectRetry: true},
		{name: "wrapped context canceled", err: errors.Join(errors.New("generate"), context.Canceled), expectedCode: SuggestionTimeout, expectRetry: true},
		{name: "quota error", err: errors.New("quota exceeded"), expectedCode: SuggestionRateLimited, expectRetry: true},
		{name: "resource exhausted", err: errors.New("rpc error: Resource Exhausted"), expectedCode: SuggestionRateLimited, expectRetry: true},
		{name: "invalid api key", err: errors.New("Invalid API key"), expectedCode: SuggestionAuthError, expectRetry: false},
		{name: "403 forbidden", err: errors.New("403 forbidden"), expectedCode: SuggestionAuthError, expectRetry: false},
		{name: "dial error", err: errors.New("dial tcp: lookup failed"), expectedCode: SuggestionUnavailable, expectRetry: true},
		{name: "503", err: errors.New("HTTP 503"), expectedCode: SuggestionUnavailable, expectRetry: true},
		{name: "parse failure", err: errors.New("failed to parse JSON response"), expectedCode: SuggestionParseError, expectRetry: true},
		{name: "unknown", err: errors.New("something odd"), expectedCode: SuggestionUnknownError, expectRetry: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifySuggestionError(tt.err)
			if got.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, got.Code)
			}
			if got.Retryable != tt.expectRetry {
				t.Errorf("expected retryable %v, got %v", tt.expectRetry, got.Retryable)
			}
		})
	}
}
