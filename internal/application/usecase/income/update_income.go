package income

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
)

// UpdateIncomeInput represents the input for income update.
type UpdateIncomeInput struct {
	IncomeID uuid.UUID
	IncomeFields
}

// UpdateIncomeOutput represents the output of income update.
type UpdateIncomeOutput struct {
	Income *entity.Income
}

// UpdateIncomeUseCase handles income update logic.
type UpdateIncomeUseCase struct {
	incomeRepo  adapter.IncomeRepository
	freightRepo adapter.FreightRepository
}

// NewUpdateIncomeUseCase creates a new UpdateIncomeUseCase instance.
func NewUpdateIncomeUseCase(incomeRepo adapter.IncomeRepository, freightRepo adapter.FreightRepository) *UpdateIncomeUseCase {
	return &UpdateIncomeUseCase{
		incomeRepo:  incomeRepo,
		freightRepo: freightRepo,
	}
}

// Execute updates a manual income. Settlement incomes are rejected.
func (uc *UpdateIncomeUseCase) Execute(ctx context.Context, input UpdateIncomeInput) (*UpdateIncomeOutput, error) {
	fields := input.IncomeFields
	fields.normalize()
	if err := fields.validate(); err != nil {
		return nil, err
	}

	income, err := uc.incomeRepo.FindByID(ctx, input.IncomeID)
	if err != nil {
		return nil, incomeNotFound(err)
	}
	if income.Origin == entity.IncomeOriginSettlement {
		return nil, settlementLocked()
	}

	if err := checkFreight(ctx, uc.freightRepo, fields.FreightID); err != nil {
		return nil, err
	}

	income.Name = fields.Name
	income.Description = fields.Description
	income.Amount = fields.Amount
	income.Category = fields.Category
	income.FreightID = fields.FreightID
	income.UpdatedAt = time.Now().UTC()

	if err := uc.incomeRepo.Update(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to update income: %w", err)
	}

	return &UpdateIncomeOutput{
		Income: income,
	}, nil
}
