package freight

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
)

// UpdateFreightInput represents the input for freight update. Every field is replaced.
type UpdateFreightInput struct {
	FreightID uuid.UUID
	FreightFields
}

// UpdateFreightOutput represents the output of freight update.
type UpdateFreightOutput struct {
	Freight *entity.Freight
}

// UpdateFreightUseCase handles freight update logic.
type UpdateFreightUseCase struct {
	freightRepo adapter.FreightRepository
	references  referenceChecker
}

// NewUpdateFreightUseCase creates a new UpdateFreightUseCase instance.
func NewUpdateFreightUseCase(
	freightRepo adapter.FreightRepository,
	vehicleRepo adapter.VehicleRepository,
	driverRepo adapter.DriverRepository,
	brokerRepo adapter.BrokerRepository,
) *UpdateFreightUseCase {
	return &UpdateFreightUseCase{
		freightRepo: freightRepo,
		references:  referenceChecker{vehicleRepo: vehicleRepo, driverRepo: driverRepo, brokerRepo: brokerRepo},
	}
}

// Execute performs the freight update and recomputes the total value.
// The settled flag is not editable here, only the settlement use cases change it.
func (uc *UpdateFreightUseCase) Execute(ctx context.Context, input UpdateFreightInput) (*UpdateFreightOutput, error) {
	fields := input.FreightFields
	fields.normalize()
	if err := fields.validate(); err != nil {
		return nil, err
	}

	freight, err := uc.freightRepo.FindByID(ctx, input.FreightID)
	if err != nil {
		return nil, notFoundError(err)
	}

	if err := uc.references.check(ctx, fields); err != nil {
		return nil, err
	}

	freight.Name = fields.Name
	freight.Origin = fields.Origin
	freight.Destination = fields.Destination
	freight.DistanceKm = fields.DistanceKm
	freight.Weights = fields.Weights
	freight.PricePerTon = fields.PricePerTon
	freight.VehicleID = fields.VehicleID
	freight.DriverID = fields.DriverID
	freight.BrokerID = fields.BrokerID
	freight.RecalculateTotal()
	freight.UpdatedAt = time.Now().UTC()

	if err := uc.freightRepo.Update(ctx, freight); err != nil {
		return nil, fmt.Errorf("failed to update freight: %w", err)
	}

	return &UpdateFreightOutput{
		Freight: freight,
	}, nil
}
