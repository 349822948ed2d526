package adapter

import (
	"context"

	"github.com/freight-manager/backend/internal/domain/entity"
)

// CategoryRepository stores the lookup lists used by the ledger forms.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	// FindByKind returns the categories of one kind ordered by name.
	FindByKind(ctx context.Context, kind entity.CategoryKind) ([]*entity.Category, error)
	ExistsByKindAndName(ctx context.Context, kind entity.CategoryKind, name string) (bool, error)
}
