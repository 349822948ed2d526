// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
	domainerror "github.com/freight-manager/backend/internal/domain/error"
	"github.com/freight-manager/backend/internal/integration/persistence/model"
)

// freightEditableColumns are written by Update. settled is owned by the settlement repository.
var freightEditableColumns = []string{
	"name", "origin", "destination", "distance_km", "weights",
	"price_per_ton", "total_value", "vehicle_id", "driver_id", "broker_id", "updated_at",
}

// freightRepository implements the adapter.FreightRepository interface.
type freightRepository struct {
	db    *gorm.DB
	cache adapter.Cache
}

// NewFreightRepository creates a new freight repository instance.
func NewFreightRepository(db *gorm.DB, cache adapter.Cache) adapter.FreightRepository {
	return &freightRepository{
		db:    db,
		cache: cache,
	}
}

// Create creates a new freight in the database.
func (r *freightRepository) Create(ctx context.Context, freight *entity.Freight) error {
	freightModel := model.FreightFromEntity(freight)
	result := r.db.WithContext(ctx).Create(freightModel)
	if result.Error != nil {
		return domainerror.NewStoreError("create freight", result.Error)
	}
	return nil
}

// FindByID retrieves a freight by its ID.
func (r *freightRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Freight, error) {
	var freightModel model.FreightModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&freightModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrFreightNotFound
		}
		return nil, domainerror.NewStoreError("find freight", result.Error)
	}
	return freightModel.ToEntity(), nil
}

// FindAll retrieves the freights matching the filter, newest first.
func (r *freightRepository) FindAll(ctx context.Context, filter adapter.FreightFilter) ([]*entity.Freight, error) {
	query := r.db.WithContext(ctx).Model(&model.FreightModel{})

	if filter.Settled != nil {
		query = query.Where("settled = ?", *filter.Settled)
	}
	if filter.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *filter.VehicleID)
	}
	if filter.DriverID != nil {
		query = query.Where("driver_id = ?", *filter.DriverID)
	}
	if filter.BrokerID != nil {
		query = query.Where("broker_id = ?", *filter.BrokerID)
	}

	var freightModels []model.FreightModel
	if err := query.Order("created_at DESC").Find(&freightModels).Error; err != nil {
		return nil, domainerror.NewStoreError("list freights", err)
	}

	freights := make([]*entity.Freight, len(freightModels))
	for i, fm := range freightModels {
		freights[i] = fm.ToEntity()
	}
	return freights, nil
}

// Update saves the editable fields of a freight.
func (r *freightRepository) Update(ctx context.Context, freight *entity.Freight) error {
	freightModel := model.FreightFromEntity(freight)
	result := r.db.WithContext(ctx).
		Model(&model.FreightModel{}).
		Where("id = ?", freight.ID).
		Select(freightEditableColumns).
		Updates(freightModel)
	if result.Error != nil {
		return domainerror.NewStoreError("update freight", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrFreightNotFound
	}
	return nil
}

// Delete removes a freight together with its settlement income. Other incomes and
// expenses are detached and become general rows.
func (r *freightRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("freight_id = ? AND origin = ?", id, string(entity.IncomeOriginSettlement)).
			Delete(&model.IncomeModel{}).Error; err != nil {
			return domainerror.NewStoreError("delete settlement income", err)
		}

		if err := tx.Model(&model.IncomeModel{}).
			Where("freight_id = ?", id).
			Update("freight_id", nil).Error; err != nil {
			return domainerror.NewStoreError("detach incomes", err)
		}

		if err := tx.Model(&model.ExpenseModel{}).
			Where("freight_id = ?", id).
			Update("freight_id", nil).Error; err != nil {
			return domainerror.NewStoreError("detach expenses", err)
		}

		result := tx.Delete(&model.FreightModel{}, "id = ?", id)
		if result.Error != nil {
			return domainerror.NewStoreError("delete freight", result.Error)
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrFreightNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	invalidateFreights(ctx, r.cache, &id)
	return nil
}
