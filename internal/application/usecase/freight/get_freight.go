package freight

import (
	"context"

	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
	domainerror "github.com/freight-manager/backend/internal/domain/error"
)

// GetFreightInput represents the input for retrieving a freight.
type GetFreightInput struct {
	FreightID uuid.UUID
	// DriverID restricts the lookup to freights assigned to that driver.
	DriverID *uuid.UUID
}

// GetFreightOutput represents the output of retrieving a freight.
type GetFreightOutput struct {
	Freight *entity.Freight
}

// GetFreightUseCase handles retrieving a single freight.
type GetFreightUseCase struct {
	freightRepo adapter.FreightRepository
}

// NewGetFreightUseCase creates a new GetFreightUseCase instance.
func NewGetFreightUseCase(freightRepo adapter.FreightRepository) *GetFreightUseCase {
	return &GetFreightUseCase{
		freightRepo: freightRepo,
	}
}

// Execute retrieves the freight.
func (uc *GetFreightUseCase) Execute(ctx context.Context, input GetFreightInput) (*GetFreightOutput, error) {
	freight, err := uc.freightRepo.FindByID(ctx, input.FreightID)
	if err != nil {
		return nil, notFoundError(err)
	}

	if input.DriverID != nil && (freight.DriverID == nil || *freight.DriverID != *input.DriverID) {
		return nil, domainerror.NewFreightError(
			domainerror.ErrCodeFreightAccessDenied,
			"freight is not assigned to this driver",
			domainerror.ErrFreightAccessDenied,
		)
	}

	return &GetFreightOutput{
		Freight: freight,
	}, nil
}
