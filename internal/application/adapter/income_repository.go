// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/domain/entity"
)

// IncomeFilter narrows an income listing.
type IncomeFilter struct {
	FreightID *uuid.UUID
	// GeneralOnly keeps incomes without freight. Ignored when FreightID is set.
	GeneralOnly bool
}

// IncomeRepository defines the interface for income persistence operations.
type IncomeRepository interface {
	// Create creates a new income in the database.
	Create(ctx context.Context, income *entity.Income) error

	// FindByID retrieves an income by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error)

	// FindByFreightID retrieves every income attributed to the freight, newest first.
	FindByFreightID(ctx context.Context, freightID uuid.UUID) ([]*entity.Income, error)

	// FindAll retrieves the incomes matching the filter, newest first.
	FindAll(ctx context.Context, filter IncomeFilter) ([]*entity.Income, error)

	// FindAllWithFreight retrieves every income together with its freight, if any.
	FindAllWithFreight(ctx context.Context) ([]*entity.IncomeWithFreight, error)

	// Update updates an existing income in the database.
	Update(ctx context.Context, income *entity.Income) error

	// Delete removes an income from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
