package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
	domainerror "github.com/freight-manager/backend/internal/domain/error"
	"github.com/freight-manager/backend/internal/integration/persistence/model"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository stores the lookup lists (income and expense categories, payment methods).
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	err := r.db.WithContext(ctx).Create(model.CategoryFromEntity(category)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerror.ErrCategoryNameExists
	}
	return domainerror.NewStoreError("create category", err)
}

func (r *categoryRepository) FindByKind(ctx context.Context, kind entity.CategoryKind) ([]*entity.Category, error) {
	var rows []model.CategoryModel
	err := r.db.WithContext(ctx).Where("kind = ?", string(kind)).Order("name ASC").Find(&rows).Error
	if err != nil {
		return nil, domainerror.NewStoreError("list categories", err)
	}

	categories := make([]*entity.Category, 0, len(rows))
	for i := range rows {
		categories = append(categories, rows[i].ToEntity())
	}
	return categories, nil
}

// ExistsByKindAndName ignores case, so "Diesel" and "diesel" collide.
func (r *categoryRepository) ExistsByKindAndName(ctx context.Context, kind entity.CategoryKind, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("kind = ? AND LOWER(name) = LOWER(?)", string(kind), name).
		Count(&count).Error
	if err != nil {
		return false, domainerror.NewStoreError("check category name", err)
	}
	return count > 0, nil
}
