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

// DriverInput holds the editable fields of a driver.
type DriverInput struct {
	Name     string
	Document string
	Phone    string
}

func (in *DriverInput) normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Document = strings.TrimSpace(in.Document)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Name == "" {
		return missingFields("name is required")
	}
	return nil
}

// CreateDriverUseCase handles driver creation.
type CreateDriverUseCase struct {
	driverRepo adapter.DriverRepository
}

// NewCreateDriverUseCase creates a new CreateDriverUseCase instance.
func NewCreateDriverUseCase(driverRepo adapter.DriverRepository) *CreateDriverUseCase {
	return &CreateDriverUseCase{driverRepo: driverRepo}
}

// Execute creates the driver.
func (uc *CreateDriverUseCase) Execute(ctx context.Context, input DriverInput) (*entity.Driver, error) {
	if err := input.normalize(); err != nil {
		return nil, err
	}

	driver := entity.NewDriver(input.Name, input.Document, input.Phone)
	if err := uc.driverRepo.Create(ctx, driver); err != nil {
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}
	return driver, nil
}

// ListDriversUseCase handles listing drivers.
type ListDriversUseCase struct {
	driverRepo adapter.DriverRepository
}

// NewListDriversUseCase creates a new ListDriversUseCase instance.
func NewListDriversUseCase(driverRepo adapter.DriverRepository) *ListDriversUseCase {
	return &ListDriversUseCase{driverRepo: driverRepo}
}

// Execute lists every driver ordered by name.
func (uc *ListDriversUseCase) Execute(ctx context.Context) ([]*entity.Driver, error) {
	drivers, err := uc.driverRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	return drivers, nil
}

// UpdateDriverUseCase handles driver updates.
type UpdateDriverUseCase struct {
	driverRepo adapter.DriverRepository
}

// NewUpdateDriverUseCase creates a new UpdateDriverUseCase instance.
func NewUpdateDriverUseCase(driverRepo adapter.DriverRepository) *UpdateDriverUseCase {
	return &UpdateDriverUseCase{driverRepo: driverRepo}
}

// Execute replaces the fields of the driver.
func (uc *UpdateDriverUseCase) Execute(ctx context.Context, id uuid.UUID, input DriverInput) (*entity.Driver, error) {
	if err := input.normalize(); err != nil {
		return nil, err
	}

	driver, err := uc.driverRepo.FindByID(ctx, id)
	if err != nil {
		return nil, driverNotFound(err)
	}

	driver.Name = input.Name
	driver.Document = input.Document
	driver.Phone = input.Phone
	driver.UpdatedAt = time.Now().UTC()

	if err := uc.driverRepo.Update(ctx, driver); err != nil {
		return nil, fmt.Errorf("failed to update driver: %w", err)
	}
	return driver, nil
}

// DeleteDriverUseCase handles driver deletion.
type DeleteDriverUseCase struct {
	driverRepo adapter.DriverRepository
}

// NewDeleteDriverUseCase creates a new DeleteDriverUseCase instance.
func NewDeleteDriverUseCase(driverRepo adapter.DriverRepository) *DeleteDriverUseCase {
	return &DeleteDriverUseCase{driverRepo: driverRepo}
}

// Execute deletes the driver.
func (uc *DeleteDriverUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if err := uc.driverRepo.Delete(ctx, id); err != nil {
		return driverNotFound(err)
	}
	return nil
}

func driverNotFound(err error) error {
	if errors.Is(err, domainerror.ErrDriverNotFound) {
		return domainerror.NewFleetError(domainerror.ErrCodeDriverNotFound, "driver not found", domainerror.ErrDriverNotFound)
	}
	return fmt.Errorf("failed to find driver: %w", err)
}
