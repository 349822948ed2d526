// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/domain/entity"
	"github.com/freight-manager/backend/internal/domain/valueobject"
)

// SettleResult describes what an Open -> Settled transition wrote.
type SettleResult struct {
	Freight *entity.Freight
	Plan    valueobject.SettlementPlan
	// AlreadySettled is true when the freight was settled before the call and nothing was written.
	AlreadySettled bool
}

// ReactivateResult describes what a Settled -> Open transition removed.
type ReactivateResult struct {
	Freight        *entity.Freight
	RemovedIncomes int
}

// SettlementRepository runs the settlement transitions atomically.
// Each call locks the freight row for the duration of its transaction.
type SettlementRepository interface {
	// Settle marks the freight settled and records the remaining receivable as a settlement income.
	Settle(ctx context.Context, freightID uuid.UUID) (*SettleResult, error)

	// Reactivate deletes the settlement incomes of the freight and reopens it.
	Reactivate(ctx context.Context, freightID uuid.UUID) (*ReactivateResult, error)
}
