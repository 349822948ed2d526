// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
	domainerror "github.com/freight-manager/backend/internal/domain/error"
)

// ExpenseFields are the editable fields of an expense.
type ExpenseFields struct {
	Name          string
	Description   string
	Category      string
	Amount        decimal.Decimal
	VehicleID     *uuid.UUID
	DriverID      *uuid.UUID
	FreightID     *uuid.UUID
	PaymentMethod string
	Installments  *int
	ReceiptURL    string
}

func (f *ExpenseFields) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.Category = strings.TrimSpace(f.Category)
	f.PaymentMethod = strings.TrimSpace(f.PaymentMethod)
	f.ReceiptURL = strings.TrimSpace(f.ReceiptURL)
	f.Amount = f.Amount.Round(2)
	if f.PaymentMethod != entity.PaymentMethodCredit {
		f.Installments = nil
	}
}

func (f *ExpenseFields) validate() error {
	if f.Name == "" {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeMissingEntryName,
			"name is required",
			domainerror.ErrMissingEntryName,
		)
	}
	if f.Category == "" {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeMissingEntryCategory,
			"category is required",
			domainerror.ErrMissingEntryCategory,
		)
	}
	if f.Amount.IsNegative() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"amount must not be negative",
			domainerror.ErrInvalidAmount,
		)
	}
	if f.PaymentMethod == entity.PaymentMethodCredit && (f.Installments == nil || *f.Installments < 1) {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidInstallments,
			"credit expenses need at least one installment",
			domainerror.ErrInvalidInstallments,
		)
	}
	return nil
}

// references verifies the vehicle, driver and freight an expense points to.
type references struct {
	freightRepo adapter.FreightRepository
	vehicleRepo adapter.VehicleRepository
	driverRepo  adapter.DriverRepository
}

func (r references) check(ctx context.Context, f ExpenseFields) error {
	if f.FreightID != nil {
		if _, err := r.freightRepo.FindByID(ctx, *f.FreightID); err != nil {
			if errors.Is(err, domainerror.ErrFreightNotFound) {
				return domainerror.NewLedgerError(
					domainerror.ErrCodeLedgerFreightNotFound,
					"freight not found",
					domainerror.ErrFreightNotFound,
				)
			}
			return fmt.Errorf("failed to find freight: %w", err)
		}
	}
	if f.VehicleID != nil {
		if _, err := r.vehicleRepo.FindByID(ctx, *f.VehicleID); err != nil {
			return fleetReferenceError(err, domainerror.ErrVehicleNotFound, domainerror.ErrCodeVehicleNotFound, "vehicle not found")
		}
	}
	if f.DriverID != nil {
		if _, err := r.driverRepo.FindByID(ctx, *f.DriverID); err != nil {
			return fleetReferenceError(err, domainerror.ErrDriverNotFound, domainerror.ErrCodeDriverNotFound, "driver not found")
		}
	}
	return nil
}

func fleetReferenceError(err, sentinel error, code domainerror.FleetErrorCode, message string) error {
	if errors.Is(err, sentinel) {
		return domainerror.NewFleetError(code, message, sentinel)
	}
	return fmt.Errorf("failed to check expense reference: %w", err)
}

func expenseNotFound(err error) error {
	if errors.Is(err, domainerror.ErrExpenseNotFound) {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}
	return fmt.Errorf("failed to find expense: %w", err)
}
