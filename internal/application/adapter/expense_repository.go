// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/domain/entity"
)

// ExpenseFilter narrows an expense listing. Nil fields are not applied.
type ExpenseFilter struct {
	FreightID *uuid.UUID
	VehicleID *uuid.UUID
	DriverID  *uuid.UUID
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByFreightID retrieves every expense attributed to the freight, newest first.
	FindByFreightID(ctx context.Context, freightID uuid.UUID) ([]*entity.Expense, error)

	// FindAll retrieves the expenses matching the filter, newest first.
	FindAll(ctx context.Context, filter ExpenseFilter) ([]*entity.Expense, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
