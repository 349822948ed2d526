// Package income contains income-related use cases.
package income

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

// IncomeFields are the editable fields of an income.
type IncomeFields struct {
	Name        string
	Description string
	Amount      decimal.Decimal
	Category    string
	FreightID   *uuid.UUID
}

func (f *IncomeFields) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.Category = strings.TrimSpace(f.Category)
	f.Amount = f.Amount.Round(2)
}

func (f *IncomeFields) validate() error {
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
	return nil
}

// checkFreight verifies that the attributed freight exists.
func checkFreight(ctx context.Context, freightRepo adapter.FreightRepository, freightID *uuid.UUID) error {
	if freightID == nil {
		return nil
	}
	if _, err := freightRepo.FindByID(ctx, *freightID); err != nil {
		if errors.Is(err, domainerror.ErrFreightNotFound) {
			return domainerror.NewLedgerError(
				domainerror.ErrCodeLedgerFreightNotFound,
				"freight not found",
				domainerror.ErrFreightNotFound,
			)
		}
		return fmt.Errorf("failed to find freight: %w", err)
	}
	return nil
}

func incomeNotFound(err error) error {
	if errors.Is(err, domainerror.ErrIncomeNotFound) {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeIncomeNotFound,
			"income not found",
			domainerror.ErrIncomeNotFound,
		)
	}
	return fmt.Errorf("failed to find income: %w", err)
}

func settlementLocked() error {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeSettlementIncomeLocked,
		"settlement incomes can only be removed by reactivating the freight",
		domainerror.ErrSettlementIncomeLocked,
	)
}
