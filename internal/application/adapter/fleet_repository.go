// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/domain/entity"
)

// VehicleRepository defines the interface for vehicle persistence operations.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
	FindAll(ctx context.Context) ([]*entity.Vehicle, error)
	Update(ctx context.Context, vehicle *entity.Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByPlate checks if another vehicle already uses the plate.
	ExistsByPlate(ctx context.Context, plate string, excludeID *uuid.UUID) (bool, error)
}

// DriverRepository defines the interface for driver persistence operations.
type DriverRepository interface {
	Create(ctx context.Context, driver *entity.Driver) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Driver, error)
	FindAll(ctx context.Context) ([]*entity.Driver, error)
	Update(ctx context.Context, driver *entity.Driver) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BrokerRepository defines the interface for broker persistence operations.
type BrokerRepository interface {
	Create(ctx context.Context, broker *entity.Broker) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Broker, error)
	FindAll(ctx context.Context) ([]*entity.Broker, error)
	Update(ctx context.Context, broker *entity.Broker) error
	Delete(ctx context.Context, id uuid.UUID) error
}
