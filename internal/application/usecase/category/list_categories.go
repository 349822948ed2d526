package category

import (
	"context"
	"fmt"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
)

type ListCategoriesInput struct {
	Kind entity.CategoryKind
}

type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase handles listing one lookup enumeration.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute lists the categories of the requested kind ordered by name.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	if !input.Kind.IsValid() {
		return nil, invalidKind()
	}

	categories, err := uc.categoryRepo.FindByKind(ctx, input.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &ListCategoriesOutput{
		Categories: categories,
	}, nil
}
