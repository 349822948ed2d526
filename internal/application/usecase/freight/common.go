// Package freight contains freight-related use cases.
package freight

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freight-manager/backend/internal/application/adapter"
	domainerror "github.com/freight-manager/backend/internal/domain/error"
)

// FreightFields are the editable fields of a freight, shared by create and update.
type FreightFields struct {
	Name        string
	Origin      string
	Destination string
	DistanceKm  *decimal.Decimal
	Weights     []decimal.Decimal
	PricePerTon decimal.Decimal
	VehicleID   *uuid.UUID
	DriverID    *uuid.UUID
	BrokerID    *uuid.UUID
}

func (f *FreightFields) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Origin = strings.TrimSpace(f.Origin)
	f.Destination = strings.TrimSpace(f.Destination)
}

func (f *FreightFields) validate() error {
	if f.Name == "" {
		return domainerror.NewFreightError(
			domainerror.ErrCodeInvalidFreightName,
			"name is required",
			domainerror.ErrInvalidFreightName,
		)
	}

	if f.Origin == "" || f.Destination == "" {
		return domainerror.NewFreightError(
			domainerror.ErrCodeInvalidFreightRoute,
			"origin and destination are required",
			domainerror.ErrInvalidFreightRoute,
		)
	}

	if len(f.Weights) == 0 {
		return domainerror.NewFreightError(
			domainerror.ErrCodeInvalidWeights,
			"at least one weight is required",
			domainerror.ErrInvalidWeights,
		)
	}
	for _, w := range f.Weights {
		if w.IsNegative() {
			return domainerror.NewFreightError(
				domainerror.ErrCodeInvalidWeights,
				"weights must not be negative",
				domainerror.ErrInvalidWeights,
			)
		}
	}

	if f.PricePerTon.IsNegative() {
		return domainerror.NewFreightError(
			domainerror.ErrCodeInvalidPricePerTon,
			"price per ton must not be negative",
			domainerror.ErrInvalidPricePerTon,
		)
	}

	if f.DistanceKm != nil && f.DistanceKm.IsNegative() {
		return domainerror.NewFreightError(
			domainerror.ErrCodeInvalidDistance,
			"distance must not be negative",
			domainerror.ErrInvalidDistance,
		)
	}

	return nil
}

// referenceChecker verifies that the vehicle, driver and broker of a freight exist.
type referenceChecker struct {
	vehicleRepo adapter.VehicleRepository
	driverRepo  adapter.DriverRepository
	brokerRepo  adapter.BrokerRepository
}

func (c referenceChecker) check(ctx context.Context, f FreightFields) error {
	if f.VehicleID != nil {
		if _, err := c.vehicleRepo.FindByID(ctx, *f.VehicleID); err != nil {
			return referenceError("vehicle", err, domainerror.ErrVehicleNotFound)
		}
	}
	if f.DriverID != nil {
		if _, err := c.driverRepo.FindByID(ctx, *f.DriverID); err != nil {
			return referenceError("driver", err, domainerror.ErrDriverNotFound)
		}
	}
	if f.BrokerID != nil {
		if _, err := c.brokerRepo.FindByID(ctx, *f.BrokerID); err != nil {
			return referenceError("broker", err, domainerror.ErrBrokerNotFound)
		}
	}
	return nil
}

func referenceError(name string, err, notFound error) error {
	if errors.Is(err, notFound) {
		return domainerror.NewFreightError(
			domainerror.ErrCodeFreightReferenceNotFound,
			name+" not found",
			domainerror.ErrFreightReferenceNotFound,
		)
	}
	return fmt.Errorf("failed to find %s: %w", name, err)
}

// notFoundError maps a repository lookup failure to a FreightError when the freight is missing.
func notFoundError(err error) error {
	if errors.Is(err, domainerror.ErrFreightNotFound) {
		return domainerror.NewFreightError(
			domainerror.ErrCodeFreightNotFound,
			"freight not found",
			domainerror.ErrFreightNotFound,
		)
	}
	return fmt.Errorf("failed to find freight: %w", err)
}
