// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
	domainerror "github.com/freight-manager/backend/internal/domain/error"
	"github.com/freight-manager/backend/internal/integration/persistence/model"
)

// incomeRepository implements the adapter.IncomeRepository interface.
type incomeRepository struct {
	db    *gorm.DB
	cache adapter.Cache
}

// NewIncomeRepository creates a new income repository instance.
func NewIncomeRepository(db *gorm.DB, cache adapter.Cache) adapter.IncomeRepository {
	return &incomeRepository{
		db:    db,
		cache: cache,
	}
}

// Create creates a new income in the database.
func (r *incomeRepository) Create(ctx context.Context, income *entity.Income) error {
	incomeModel := model.IncomeFromEntity(income)
	result := r.db.WithContext(ctx).Omit("Freight").Create(incomeModel)
	if result.Error != nil {
		return domainerror.NewStoreError("create income", result.Error)
	}

	invalidateFreights(ctx, r.cache, income.FreightID)
	return nil
}

// FindByID retrieves an income by its ID.
func (r *incomeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error) {
	var incomeModel model.IncomeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&incomeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrIncomeNotFound
		}
		return nil, domainerror.NewStoreError("find income", result.Error)
	}
	return incomeModel.ToEntity(), nil
}

// FindByFreightID retrieves every income attributed to the freight, newest first.
// Results are cached under the freight tag.
func (r *incomeRepository) FindByFreightID(ctx context.Context, freightID uuid.UUID) ([]*entity.Income, error) {
	key := incomesByFreightKey(freightID)

	var cached []*entity.Income
	err := r.cache.Get(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, adapter.ErrCacheMiss) {
		slog.Warn("Failed to read incomes from cache", "freight_id", freightID, "error", err)
	}

	incomes, err := r.FindAll(ctx, adapter.IncomeFilter{FreightID: &freightID})
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, incomes, freightTag(freightID)); err != nil {
		slog.Warn("Failed to cache incomes", "freight_id", freightID, "error", err)
	}
	return incomes, nil
}

// FindAll retrieves the incomes matching the filter, newest first.
func (r *incomeRepository) FindAll(ctx context.Context, filter adapter.IncomeFilter) ([]*entity.Income, error) {
	query := r.db.WithContext(ctx).Model(&model.IncomeModel{})

	switch {
	case filter.FreightID != nil:
		query = query.Where("freight_id = ?", *filter.FreightID)
	case filter.GeneralOnly:
		query = query.Where("freight_id IS NULL")
	}

	var incomeModels []model.IncomeModel
	if err := query.Order("created_at DESC").Find(&incomeModels).Error; err != nil {
		return nil, domainerror.NewStoreError("list incomes", err)
	}

	incomes := make([]*entity.Income, len(incomeModels))
	for i, im := range incomeModels {
		incomes[i] = im.ToEntity()
	}
	return incomes, nil
}

// FindAllWithFreight retrieves every income together with its freight, newest first.
func (r *incomeRepository) FindAllWithFreight(ctx context.Context) ([]*entity.IncomeWithFreight, error) {
	var incomeModels []model.IncomeModel
	result := r.db.WithContext(ctx).
		Preload("Freight").
		Order("created_at DESC").
		Find(&incomeModels)
	if result.Error != nil {
		return nil, domainerror.NewStoreError("list incomes with freight", result.Error)
	}

	incomes := make([]*entity.IncomeWithFreight, len(incomeModels))
	for i, im := range incomeModels {
		incomes[i] = im.ToEntityWithFreight()
	}
	return incomes, nil
}

// Update updates an existing income in the database.
func (r *incomeRepository) Update(ctx context.Context, income *entity.Income) error {
	var previous model.IncomeModel
	result := r.db.WithContext(ctx).Select("id", "freight_id").Where("id = ?", income.ID).First(&previous)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return domainerror.ErrIncomeNotFound
		}
		return domainerror.NewStoreError("find income", result.Error)
	}

	incomeModel := model.IncomeFromEntity(income)
	if err := r.db.WithContext(ctx).Omit("Freight").Save(incomeModel).Error; err != nil {
		return domainerror.NewStoreError("update income", err)
	}

	invalidateFreights(ctx, r.cache, previous.FreightID, income.FreightID)
	return nil
}

// Delete removes an income from the database.
func (r *incomeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var previous model.IncomeModel
	result := r.db.WithContext(ctx).Select("id", "freight_id").Where("id = ?", id).First(&previous)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return domainerror.ErrIncomeNotFound
		}
		return domainerror.NewStoreError("find income", result.Error)
	}

	if err := r.db.WithContext(ctx).Delete(&model.IncomeModel{}, "id = ?", id).Error; err != nil {
		return domainerror.NewStoreError("delete income", err)
	}

	invalidateFreights(ctx, r.cache, previous.FreightID)
	return nil
}
