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

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db    *gorm.DB
	cache adapter.Cache
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB, cache adapter.Cache) adapter.ExpenseRepository {
	return &expenseRepository{
		db:    db,
		cache: cache,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Create(expenseModel)
	if result.Error != nil {
		return domainerror.NewStoreError("create expense", result.Error)
	}

	invalidateFreights(ctx, r.cache, expense.FreightID)
	return nil
}

// FindByID retrieves an expense by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, domainerror.NewStoreError("find expense", result.Error)
	}
	return expenseModel.ToEntity(), nil
}

// FindByFreightID retrieves every expense attributed to the freight, newest first.
// Results are cached under the freight tag.
func (r *expenseRepository) FindByFreightID(ctx context.Context, freightID uuid.UUID) ([]*entity.Expense, error) {
	key := expensesByFreightKey(freightID)

	var cached []*entity.Expense
	err := r.cache.Get(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, adapter.ErrCacheMiss) {
		slog.Warn("Failed to read expenses from cache", "freight_id", freightID, "error", err)
	}

	expenses, err := r.FindAll(ctx, adapter.ExpenseFilter{FreightID: &freightID})
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, expenses, freightTag(freightID)); err != nil {
		slog.Warn("Failed to cache expenses", "freight_id", freightID, "error", err)
	}
	return expenses, nil
}

// FindAll retrieves the expenses matching the filter, newest first.
func (r *expenseRepository) FindAll(ctx context.Context, filter adapter.ExpenseFilter) ([]*entity.Expense, error) {
	query := r.db.WithContext(ctx).Model(&model.ExpenseModel{})

	if filter.FreightID != nil {
		query = query.Where("freight_id = ?", *filter.FreightID)
	}
	if filter.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *filter.VehicleID)
	}
	if filter.DriverID != nil {
		query = query.Where("driver_id = ?", *filter.DriverID)
	}

	var expenseModels []model.ExpenseModel
	if err := query.Order("created_at DESC").Find(&expenseModels).Error; err != nil {
		return nil, domainerror.NewStoreError("list expenses", err)
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses, nil
}

// Update updates an existing expense in the database.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	var previous model.ExpenseModel
	result := r.db.WithContext(ctx).Select("id", "freight_id").Where("id = ?", expense.ID).First(&previous)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return domainerror.ErrExpenseNotFound
		}
		return domainerror.NewStoreError("find expense", result.Error)
	}

	expenseModel := model.ExpenseFromEntity(expense)
	if err := r.db.WithContext(ctx).Save(expenseModel).Error; err != nil {
		return domainerror.NewStoreError("update expense", err)
	}

	invalidateFreights(ctx, r.cache, previous.FreightID, expense.FreightID)
	return nil
}

// Delete removes an expense from the database.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var previous model.ExpenseModel
	result := r.db.WithContext(ctx).Select("id", "freight_id").Where("id = ?", id).First(&previous)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return domainerror.ErrExpenseNotFound
		}
		return domainerror.NewStoreError("find expense", result.Error)
	}

	if err := r.db.WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", id).Error; err != nil {
		return domainerror.NewStoreError("delete expense", err)
	}

	invalidateFreights(ctx, r.cache, previous.FreightID)
	return nil
}
