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

// vehicleRepository implements the adapter.VehicleRepository interface.
type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository instance.
func NewVehicleRepository(db *gorm.DB) adapter.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	if err := r.db.WithContext(ctx).Create(model.VehicleFromEntity(vehicle)).Error; err != nil {
		return domainerror.NewStoreError("create vehicle", err)
	}
	return nil
}

func (r *vehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	var vehicleModel model.VehicleModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&vehicleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrVehicleNotFound
		}
		return nil, domainerror.NewStoreError("find vehicle", result.Error)
	}
	return vehicleModel.ToEntity(), nil
}

func (r *vehicleRepository) FindAll(ctx context.Context) ([]*entity.Vehicle, error) {
	var vehicleModels []model.VehicleModel
	if err := r.db.WithContext(ctx).Order("plate ASC").Find(&vehicleModels).Error; err != nil {
		return nil, domainerror.NewStoreError("list vehicles", err)
	}

	vehicles := make([]*entity.Vehicle, len(vehicleModels))
	for i, vm := range vehicleModels {
		vehicles[i] = vm.ToEntity()
	}
	return vehicles, nil
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	if err := r.db.WithContext(ctx).Save(model.VehicleFromEntity(vehicle)).Error; err != nil {
		return domainerror.NewStoreError("update vehicle", err)
	}
	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.VehicleModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerror.NewStoreError("delete vehicle", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrVehicleNotFound
	}
	return nil
}

// ExistsByPlate checks if another vehicle already uses the plate.
func (r *vehicleRepository) ExistsByPlate(ctx context.Context, plate string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&model.VehicleModel{}).Where("plate = ?", plate)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, domainerror.NewStoreError("count vehicles", err)
	}
	return count > 0, nil
}

// driverRepository implements the adapter.DriverRepository interface.
type driverRepository struct {
	db *gorm.DB
}

// NewDriverRepository creates a new driver repository instance.
func NewDriverRepository(db *gorm.DB) adapter.DriverRepository {
	return &driverRepository{db: db}
}

func (r *driverRepository) Create(ctx context.Context, driver *entity.Driver) error {
	if err := r.db.WithContext(ctx).Create(model.DriverFromEntity(driver)).Error; err != nil {
		return domainerror.NewStoreError("create driver", err)
	}
	return nil
}

func (r *driverRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Driver, error) {
	var driverModel model.DriverModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&driverModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDriverNotFound
		}
		return nil, domainerror.NewStoreError("find driver", result.Error)
	}
	return driverModel.ToEntity(), nil
}

func (r *driverRepository) FindAll(ctx context.Context) ([]*entity.Driver, error) {
	var driverModels []model.DriverModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&driverModels).Error; err != nil {
		return nil, domainerror.NewStoreError("list drivers", err)
	}

	drivers := make([]*entity.Driver, len(driverModels))
	for i, dm := range driverModels {
		drivers[i] = dm.ToEntity()
	}
	return drivers, nil
}

func (r *driverRepository) Update(ctx context.Context, driver *entity.Driver) error {
	if err := r.db.WithContext(ctx).Save(model.DriverFromEntity(driver)).Error; err != nil {
		return domainerror.NewStoreError("update driver", err)
	}
	return nil
}

func (r *driverRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.DriverModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerror.NewStoreError("delete driver", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrDriverNotFound
	}
	return nil
}

// brokerRepository implements the adapter.BrokerRepository interface.
type brokerRepository struct {
	db *gorm.DB
}

// NewBrokerRepository creates a new broker repository instance.
func NewBrokerRepository(db *gorm.DB) adapter.BrokerRepository {
	return &brokerRepository{db: db}
}

func (r *brokerRepository) Create(ctx context.Context, broker *entity.Broker) error {
	if err := r.db.WithContext(ctx).Create(model.BrokerFromEntity(broker)).Error; err != nil {
		return domainerror.NewStoreError("create broker", err)
	}
	return nil
}

func (r *brokerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Broker, error) {
	var brokerModel model.BrokerModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&brokerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBrokerNotFound
		}
		return nil, domainerror.NewStoreError("find broker", result.Error)
	}
	return brokerModel.ToEntity(), nil
}

func (r *brokerRepository) FindAll(ctx context.Context) ([]*entity.Broker, error) {
	var brokerModels []model.BrokerModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&brokerModels).Error; err != nil {
		return nil, domainerror.NewStoreError("list brokers", err)
	}

	brokers := make([]*entity.Broker, len(brokerModels))
	for i, bm := range brokerModels {
		brokers[i] = bm.ToEntity()
	}
	return brokers, nil
}

func (r *brokerRepository) Update(ctx context.Context, broker *entity.Broker) error {
	if err := r.db.WithContext(ctx).Save(model.BrokerFromEntity(broker)).Error; err != nil {
		return domainerror.NewStoreError("update broker", err)
	}
	return nil
}

func (r *brokerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BrokerModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerror.NewStoreError("delete broker", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBrokerNotFound
	}
	return nil
}
