package freight

import (
	"context"
	"fmt"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
)

// CreateFreightInput represents the input for freight creation.
type CreateFreightInput struct {
	FreightFields
}

// CreateFreightOutput represents the output of freight creation.
type CreateFreightOutput struct {
	Freight *entity.Freight
}

// CreateFreightUseCase handles freight creation logic.
type CreateFreightUseCase struct {
	freightRepo adapter.FreightRepository
	references  referenceChecker
}

// NewCreateFreightUseCase creates a new CreateFreightUseCase instance.
func NewCreateFreightUseCase(
	freightRepo adapter.FreightRepository,
	vehicleRepo adapter.VehicleRepository,
	driverRepo adapter.DriverRepository,
	brokerRepo adapter.BrokerRepository,
) *CreateFreightUseCase {
	return &CreateFreightUseCase{
		freightRepo: freightRepo,
		references:  referenceChecker{vehicleRepo: vehicleRepo, driverRepo: driverRepo, brokerRepo: brokerRepo},
	}
}

// Execute performs the freight creation. The total value is computed from weights and price.
func (uc *CreateFreightUseCase) Execute(ctx context.Context, input CreateFreightInput) (*CreateFreightOutput, error) {
	fields := input.FreightFields
	fields.normalize()
	if err := fields.validate(); err != nil {
		return nil, err
	}

	if err := uc.references.check(ctx, fields); err != nil {
		return nil, err
	}

	freight := entity.NewFreight(
		fields.Name,
		fields.Origin,
		fields.Destination,
		fields.DistanceKm,
		fields.Weights,
		fields.PricePerTon,
		fields.VehicleID,
		fields.DriverID,
		fields.BrokerID,
	)

	if err := uc.freightRepo.Create(ctx, freight); err != nil {
		return nil, fmt.Errorf("failed to create freight: %w", err)
	}

	return &CreateFreightOutput{
		Freight: freight,
	}, nil
}
