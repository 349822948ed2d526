package freight

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
)

// GetBalanceInput represents the input for the balance of a freight.
type GetBalanceInput struct {
	FreightID uuid.UUID
}

// GetBalanceOutput represents the output of the balance computation.
type GetBalanceOutput struct {
	Balance *entity.FreightBalance
}

// GetBalanceUseCase computes income, expense and net totals of one freight.
type GetBalanceUseCase struct {
	freightRepo adapter.FreightRepository
	incomeRepo  adapter.IncomeRepository
	expenseRepo adapter.ExpenseRepository
}

// NewGetBalanceUseCase creates a new GetBalanceUseCase instance.
func NewGetBalanceUseCase(
	freightRepo adapter.FreightRepository,
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
) *GetBalanceUseCase {
	return &GetBalanceUseCase{
		freightRepo: freightRepo,
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute computes the balance. Incomes and expenses without freight never count.
func (uc *GetBalanceUseCase) Execute(ctx context.Context, input GetBalanceInput) (*GetBalanceOutput, error) {
	freight, err := uc.freightRepo.FindByID(ctx, input.FreightID)
	if err != nil {
		return nil, notFoundError(err)
	}

	incomes, err := uc.incomeRepo.FindByFreightID(ctx, freight.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list freight incomes: %w", err)
	}

	expenses, err := uc.expenseRepo.FindByFreightID(ctx, freight.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list freight expenses: %w", err)
	}

	return &GetBalanceOutput{
		Balance: entity.NewFreightBalance(freight, incomes, expenses),
	}, nil
}
