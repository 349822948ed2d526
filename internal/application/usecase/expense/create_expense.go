package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	ExpenseFields
	// ActingDriverID is set when a driver registers their own expense. It overrides DriverID.
	ActingDriverID *uuid.UUID
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense registration.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	references  references
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	freightRepo adapter.FreightRepository,
	vehicleRepo adapter.VehicleRepository,
	driverRepo adapter.DriverRepository,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		references:  references{freightRepo: freightRepo, vehicleRepo: vehicleRepo, driverRepo: driverRepo},
	}
}

// Execute registers an expense. Installments are dropped unless paid by credit.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	fields := input.ExpenseFields
	if input.ActingDriverID != nil {
		fields.DriverID = input.ActingDriverID
	}

	fields.normalize()
	if err := fields.validate(); err != nil {
		return nil, err
	}

	if err := uc.references.check(ctx, fields); err != nil {
		return nil, err
	}

	expense := entity.NewExpense(
		fields.Name,
		fields.Description,
		fields.Category,
		fields.Amount,
		fields.VehicleID,
		fields.DriverID,
		fields.FreightID,
		fields.PaymentMethod,
		fields.Installments,
		fields.ReceiptURL,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{
		Expense: expense,
	}, nil
}
