package settlement

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
)

// ReactivateFreightInput represents the input for reopening a freight.
type ReactivateFreightInput struct {
	FreightID uuid.UUID
}

// ReactivateFreightOutput represents the output of reopening a freight.
type ReactivateFreightOutput struct {
	Freight        *entity.Freight
	RemovedIncomes int
}

// ReactivateFreightUseCase reverses a settlement.
type ReactivateFreightUseCase struct {
	settlementRepo adapter.SettlementRepository
}

// NewReactivateFreightUseCase creates a new ReactivateFreightUseCase instance.
func NewReactivateFreightUseCase(settlementRepo adapter.SettlementRepository) *ReactivateFreightUseCase {
	return &ReactivateFreightUseCase{
		settlementRepo: settlementRepo,
	}
}

// Execute deletes the settlement incomes of the freight and reopens it. Other incomes and
// expenses are left untouched. Reactivating an open freight is a no-op.
func (uc *ReactivateFreightUseCase) Execute(ctx context.Context, input ReactivateFreightInput) (*ReactivateFreightOutput, error) {
	result, err := uc.settlementRepo.Reactivate(ctx, input.FreightID)
	if err != nil {
		return nil, mapFreightError(err, "failed to reactivate freight")
	}

	slog.Info("Freight reactivated", "freight_id", result.Freight.ID, "removed_incomes", result.RemovedIncomes)

	return &ReactivateFreightOutput{
		Freight:        result.Freight,
		RemovedIncomes: result.RemovedIncomes,
	}, nil
}
