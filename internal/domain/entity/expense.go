// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethodCredit is the only payment method that carries an installment count.
const PaymentMethodCredit = "credit"

// Expense represents a financial outflow.
type Expense struct {
	ID            uuid.UUID
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
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	name, description, category string,
	amount decimal.Decimal,
	vehicleID, driverID, freightID *uuid.UUID,
	paymentMethod string,
	installments *int,
	receiptURL string,
) *Expense {
	now := time.Now().UTC()

	e := &Expense{
		ID:            uuid.New(),
		Name:          name,
		Description:   description,
		Category:      category,
		Amount:        amount,
		VehicleID:     vehicleID,
		DriverID:      driverID,
		FreightID:     freightID,
		PaymentMethod: paymentMethod,
		Installments:  installments,
		ReceiptURL:    receiptURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	e.NormalizeInstallments()
	return e
}

// NormalizeInstallments drops the installment count unless the payment method is credit.
func (e *Expense) NormalizeInstallments() {
	if e.PaymentMethod != PaymentMethodCredit {
		e.Installments = nil
	}
}

// SumExpenses returns the arithmetic sum of the expense amounts.
func SumExpenses(expenses []*Expense) decimal.Decimal {
	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(expense.Amount)
	}
	return total
}
