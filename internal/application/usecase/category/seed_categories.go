package category

import (
	"context"
	"fmt"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
)

// SeedCategoriesUseCase inserts the default enumerations that are still missing.
type SeedCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewSeedCategoriesUseCase creates a new SeedCategoriesUseCase instance.
func NewSeedCategoriesUseCase(categoryRepo adapter.CategoryRepository) *SeedCategoriesUseCase {
	return &SeedCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute seeds the defaults and returns how many rows were created. Running it twice is safe.
func (uc *SeedCategoriesUseCase) Execute(ctx context.Context) (int, error) {
	created := 0
	for _, kind := range []entity.CategoryKind{
		entity.CategoryKindIncome,
		entity.CategoryKindExpense,
		entity.CategoryKindPaymentMethod,
	} {
		for _, name := range entity.DefaultCategories()[kind] {
			exists, err := uc.categoryRepo.ExistsByKindAndName(ctx, kind, name)
			if err != nil {
				return created, fmt.Errorf("failed to check category %s/%s: %w", kind, name, err)
			}
			if exists {
				continue
			}

			if err := uc.categoryRepo.Create(ctx, entity.NewCategory(kind, name)); err != nil {
				return created, fmt.Errorf("failed to seed category %s/%s: %w", kind, name, err)
			}
			created++
		}
	}
	return created, nil
}
