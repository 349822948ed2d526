package cashflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
)

// ListCashFlowInput represents the input for the cash-flow listing.
type ListCashFlowInput struct {
	// VehicleID filters the ledger. Nil means general, all vehicles combined.
	VehicleID *uuid.UUID
	// DriverID limits the ledger to the driver's own expenses and the incomes of their freights.
	DriverID *uuid.UUID
}

// ListCashFlowOutput represents the output of the cash-flow listing.
type ListCashFlowOutput struct {
	CashFlow *entity.CashFlow
}

// ListCashFlowUseCase builds the combined ledger.
type ListCashFlowUseCase struct {
	incomeRepo  adapter.IncomeRepository
	expenseRepo adapter.ExpenseRepository
}

// NewListCashFlowUseCase creates a new ListCashFlowUseCase instance.
func NewListCashFlowUseCase(incomeRepo adapter.IncomeRepository, expenseRepo adapter.ExpenseRepository) *ListCashFlowUseCase {
	return &ListCashFlowUseCase{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute performs the cash-flow listing.
func (uc *ListCashFlowUseCase) Execute(ctx context.Context, input ListCashFlowInput) (*ListCashFlowOutput, error) {
	incomes, err := uc.incomeRepo.FindAllWithFreight(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}

	expenses, err := uc.expenseRepo.FindAll(ctx, adapter.ExpenseFilter{DriverID: input.DriverID})
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	if input.DriverID != nil {
		incomes = driverIncomes(incomes, *input.DriverID)
	}

	return &ListCashFlowOutput{
		CashFlow: Aggregate(incomes, expenses, input.VehicleID),
	}, nil
}

func driverIncomes(incomes []*entity.IncomeWithFreight, driverID uuid.UUID) []*entity.IncomeWithFreight {
	filtered := make([]*entity.IncomeWithFreight, 0, len(incomes))
	for _, item := range incomes {
		if item.Freight != nil && item.Freight.DriverID != nil && *item.Freight.DriverID == driverID {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
