package freight

import (
	"context"

	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/application/adapter"
)

// DeleteFreightInput represents the input for freight deletion.
type DeleteFreightInput struct {
	FreightID uuid.UUID
}

// DeleteFreightUseCase handles freight deletion logic.
type DeleteFreightUseCase struct {
	freightRepo adapter.FreightRepository
}

// NewDeleteFreightUseCase creates a new DeleteFreightUseCase instance.
func NewDeleteFreightUseCase(freightRepo adapter.FreightRepository) *DeleteFreightUseCase {
	return &DeleteFreightUseCase{
		freightRepo: freightRepo,
	}
}

// Execute deletes the freight. Its incomes and expenses are kept as general rows.
func (uc *DeleteFreightUseCase) Execute(ctx context.Context, input DeleteFreightInput) error {
	if err := uc.freightRepo.Delete(ctx, input.FreightID); err != nil {
		return notFoundError(err)
	}
	return nil
}
