package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
)

// UpdateExpenseInput represents the input for expense update.
type UpdateExpenseInput struct {
	ExpenseID uuid.UUID
	ExpenseFields
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	references  references
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	freightRepo adapter.FreightRepository,
	vehicleRepo adapter.VehicleRepository,
	driverRepo adapter.DriverRepository,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
		references:  references{freightRepo: freightRepo, vehicleRepo: vehicleRepo, driverRepo: driverRepo},
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	fields := input.ExpenseFields
	fields.normalize()
	if err := fields.validate(); err != nil {
		return nil, err
	}

	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		return nil, expenseNotFound(err)
	}

	if err := uc.references.check(ctx, fields); err != nil {
		return nil, err
	}

	expense.Name = fields.Name
	expense.Description = fields.Description
	expense.Category = fields.Category
	expense.Amount = fields.Amount
	expense.VehicleID = fields.VehicleID
	expense.DriverID = fields.DriverID
	expense.FreightID = fields.FreightID
	expense.PaymentMethod = fields.PaymentMethod
	expense.Installments = fields.Installments
	expense.ReceiptURL = fields.ReceiptURL
	expense.NormalizeInstallments()
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &UpdateExpenseOutput{
		Expense: expense,
	}, nil
}
