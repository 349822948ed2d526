package income

import (
	"context"
	"fmt"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
)

// CreateIncomeInput represents the input for income creation.
type CreateIncomeInput struct {
	IncomeFields
}

// CreateIncomeOutput represents the output of income creation.
type CreateIncomeOutput struct {
	Income *entity.Income
}

// CreateIncomeUseCase handles manual income registration.
type CreateIncomeUseCase struct {
	incomeRepo  adapter.IncomeRepository
	freightRepo adapter.FreightRepository
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(incomeRepo adapter.IncomeRepository, freightRepo adapter.FreightRepository) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{
		incomeRepo:  incomeRepo,
		freightRepo: freightRepo,
	}
}

// Execute registers a manual income.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*CreateIncomeOutput, error) {
	fields := input.IncomeFields
	fields.normalize()
	if err := fields.validate(); err != nil {
		return nil, err
	}

	if err := checkFreight(ctx, uc.freightRepo, fields.FreightID); err != nil {
		return nil, err
	}

	income := entity.NewIncome(fields.Name, fields.Description, fields.Amount, fields.Category, fields.FreightID)

	if err := uc.incomeRepo.Create(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}

	return &CreateIncomeOutput{
		Income: income,
	}, nil
}
