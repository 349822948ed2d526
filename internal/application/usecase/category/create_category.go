// Package category manages the lookup lists: income and expense categories and payment methods.
package category

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
	domainerror "github.com/freight-manager/backend/internal/domain/error"
)

const MaxCategoryNameLength = 50

type CreateCategoryInput struct {
	Kind entity.CategoryKind
	Name string
}

type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase adds an entry to one lookup list. Names are unique per kind, ignoring case.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categoryRepo: categoryRepo}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if !input.Kind.IsValid() {
		return nil, invalidKind()
	}

	name, err := normalizeCategoryName(input.Name)
	if err != nil {
		return nil, err
	}

	exists, err := uc.categoryRepo.ExistsByKindAndName(ctx, input.Kind, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if exists {
		return nil, nameTaken(name)
	}

	category := entity.NewCategory(input.Kind, name)
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNameExists) {
			return nil, nameTaken(name)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &CreateCategoryOutput{Category: category}, nil
}

// normalizeCategoryName trims and collapses inner whitespace.
func normalizeCategoryName(raw string) (string, error) {
	name := strings.Join(strings.Fields(raw), " ")
	switch {
	case name == "":
		return "", domainerror.NewCategoryError(domainerror.ErrCodeMissingCategoryFields, "name is required", nil)
	case utf8.RuneCountInString(name) > MaxCategoryNameLength:
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}
	return name, nil
}

func invalidKind() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeInvalidCategoryKind,
		"kind must be 'income', 'expense' or 'payment_method'",
		domainerror.ErrInvalidCategoryKind,
	)
}

func nameTaken(name string) error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryNameExists,
		fmt.Sprintf("category %q already exists", name),
		domainerror.ErrCategoryNameExists,
	)
}
