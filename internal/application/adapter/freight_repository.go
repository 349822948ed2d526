// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/domain/entity"
)

// FreightFilter narrows a freight listing. Nil fields are not applied.
type FreightFilter struct {
	Settled   *bool
	VehicleID *uuid.UUID
	DriverID  *uuid.UUID
	BrokerID  *uuid.UUID
}

// FreightRepository defines the interface for freight persistence operations.
type FreightRepository interface {
	// Create creates a new freight in the database.
	Create(ctx context.Context, freight *entity.Freight) error

	// FindByID retrieves a freight by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Freight, error)

	// FindAll retrieves the freights matching the filter, newest first.
	FindAll(ctx context.Context, filter FreightFilter) ([]*entity.Freight, error)

	// Update saves the editable fields of a freight. The settled flag is left untouched.
	Update(ctx context.Context, freight *entity.Freight) error

	// Delete removes a freight. Attributed incomes and expenses become general rows.
	Delete(ctx context.Context, id uuid.UUID) error
}
