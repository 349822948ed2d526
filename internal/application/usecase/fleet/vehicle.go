// Package fleet contains the vehicle, driver and broker use cases.
package fleet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
	domainerror "github.com/freight-manager/backend/internal/domain/error"
)

// VehicleInput holds the editable fields of a vehicle.
type VehicleInput struct {
	Plate string
	Model string
	Year  *int
}

func (in *VehicleInput) normalize() error {
	in.Plate = strings.ToUpper(strings.TrimSpace(in.Plate))
	in.Model = strings.TrimSpace(in.Model)
	if in.Plate == "" || in.Model == "" {
		return missingFields("plate and model are required")
	}
	return nil
}

// CreateVehicleUseCase handles vehicle creation.
type CreateVehicleUseCase struct {
	vehicleRepo adapter.VehicleRepository
}

// NewCreateVehicleUseCase creates a new CreateVehicleUseCase instance.
func NewCreateVehicleUseCase(vehicleRepo adapter.VehicleRepository) *CreateVehicleUseCase {
	return &CreateVehicleUseCase{vehicleRepo: vehicleRepo}
}

// Execute creates the vehicle. Plates are unique.
func (uc *CreateVehicleUseCase) Execute(ctx context.Context, input VehicleInput) (*entity.Vehicle, error) {
	if err := input.normalize(); err != nil {
		return nil, err
	}

	if err := checkPlate(ctx, uc.vehicleRepo, input.Plate, nil); err != nil {
		return nil, err
	}

	vehicle := entity.NewVehicle(input.Plate, input.Model, input.Year)
	if err := uc.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}
	return vehicle, nil
}

// ListVehiclesUseCase handles listing vehicles.
type ListVehiclesUseCase struct {
	vehicleRepo adapter.VehicleRepository
}

// NewListVehiclesUseCase creates a new ListVehiclesUseCase instance.
func NewListVehiclesUseCase(vehicleRepo adapter.VehicleRepository) *ListVehiclesUseCase {
	return &ListVehiclesUseCase{vehicleRepo: vehicleRepo}
}

// Execute lists every vehicle ordered by plate.
func (uc *ListVehiclesUseCase) Execute(ctx context.Context) ([]*entity.Vehicle, error) {
	vehicles, err := uc.vehicleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

// UpdateVehicleUseCase handles vehicle updates.
type UpdateVehicleUseCase struct {
	vehicleRepo adapter.VehicleRepository
}

// NewUpdateVehicleUseCase creates a new UpdateVehicleUseCase instance.
func NewUpdateVehicleUseCase(vehicleRepo adapter.VehicleRepository) *UpdateVehicleUseCase {
	return &UpdateVehicleUseCase{vehicleRepo: vehicleRepo}
}

// Execute replaces the fields of the vehicle.
func (uc *UpdateVehicleUseCase) Execute(ctx context.Context, id uuid.UUID, input VehicleInput) (*entity.Vehicle, error) {
	if err := input.normalize(); err != nil {
		return nil, err
	}

	vehicle, err := uc.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, vehicleNotFound(err)
	}

	if err := checkPlate(ctx, uc.vehicleRepo, input.Plate, &id); err != nil {
		return nil, err
	}

	vehicle.Plate = input.Plate
	vehicle.Model = input.Model
	vehicle.Year = input.Year
	vehicle.UpdatedAt = time.Now().UTC()

	if err := uc.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}
	return vehicle, nil
}

// DeleteVehicleUseCase handles vehicle deletion.
type DeleteVehicleUseCase struct {
	vehicleRepo adapter.VehicleRepository
}

// NewDeleteVehicleUseCase creates a new DeleteVehicleUseCase instance.
func NewDeleteVehicleUseCase(vehicleRepo adapter.VehicleRepository) *DeleteVehicleUseCase {
	return &DeleteVehicleUseCase{vehicleRepo: vehicleRepo}
}

// Execute deletes the vehicle.
func (uc *DeleteVehicleUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if err := uc.vehicleRepo.Delete(ctx, id); err != nil {
		return vehicleNotFound(err)
	}
	return nil
}

func checkPlate(ctx context.Context, repo adapter.VehicleRepository, plate string, excludeID *uuid.UUID) error {
	exists, err := repo.ExistsByPlate(ctx, plate, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check plate: %w", err)
	}
	if exists {
		return domainerror.NewFleetError(
			domainerror.ErrCodePlateExists,
			"plate already registered",
			domainerror.ErrPlateAlreadyExists,
		)
	}
	return nil
}

func vehicleNotFound(err error) error {
	if errors.Is(err, domainerror.ErrVehicleNotFound) {
		return domainerror.NewFleetError(domainerror.ErrCodeVehicleNotFound, "vehicle not found", domainerror.ErrVehicleNotFound)
	}
	return fmt.Errorf("failed to find vehicle: %w", err)
}

func missingFields(message string) error {
	return domainerror.NewFleetError(domainerror.ErrCodeMissingFleetFields, message, domainerror.ErrMissingFleetFields)
}
