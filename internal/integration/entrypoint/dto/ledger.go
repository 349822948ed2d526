package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/freight-manager/backend/internal/application/usecase/expense"
	"github.com/freight-manager/backend/internal/application/usecase/income"
	"github.com/freight-manager/backend/internal/domain/entity"
)

// IncomeRequest represents the request body for income creation and update.
type IncomeRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=1000"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category" binding:"required,max=100"`
	FreightID   *string `json:"freight_id,omitempty"`
}

// ToFields converts the request into use case fields.
func (r IncomeRequest) ToFields() (income.IncomeFields, error) {
	freightID, err := ParseOptionalUUID(r.FreightID)
	if err != nil {
		return income.IncomeFields{}, fmt.Errorf("invalid freight_id: %w", err)
	}
	return income.IncomeFields{
		Name:        r.Name,
		Description: r.Description,
		Amount:      decimal.NewFromFloat(r.Amount),
		Category:    r.Category,
		FreightID:   freightID,
	}, nil
}

// IncomeResponse represents a single income in API responses.
type IncomeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	FreightID   *string   `json:"freight_id,omitempty"`
	Origin      string    `json:"origin"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IncomeListResponse represents the response for listing incomes.
type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
}

// IncomeDataResponse is the envelope of GET /api/entradas.
type IncomeDataResponse struct {
	Data []IncomeResponse `json:"data"`
}

// ToIncomeResponse converts a domain Income entity to an IncomeResponse DTO.
func ToIncomeResponse(i *entity.Income) IncomeResponse {
	return IncomeResponse{
		ID:          i.ID.String(),
		Name:        i.Name,
		Description: i.Description,
		Amount:      money(i.Amount),
		Category:    i.Category,
		FreightID:   uuidString(i.FreightID),
		Origin:      string(i.Origin),
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

// ToIncomeResponses converts a list of incomes to IncomeResponse DTOs.
func ToIncomeResponses(incomes []*entity.Income) []IncomeResponse {
	items := make([]IncomeResponse, len(incomes))
	for i, inc := range incomes {
		items[i] = ToIncomeResponse(inc)
	}
	return items
}

// ExpenseRequest represents the request body for expense creation and update.
type ExpenseRequest struct {
	Name          string  `json:"name" binding:"required,max=255"`
	Description   string  `json:"description,omitempty" binding:"omitempty,max=1000"`
	Category      string  `json:"category" binding:"required,max=100"`
	Amount        float64 `json:"amount"`
	VehicleID     *string `json:"vehicle_id,omitempty"`
	DriverID      *string `json:"driver_id,omitempty"`
	FreightID     *string `json:"freight_id,omitempty"`
	PaymentMethod string  `json:"payment_method,omitempty" binding:"omitempty,max=50"`
	Installments  *int    `json:"installments,omitempty"`
	ReceiptURL    string  `json:"receipt_url,omitempty" binding:"omitempty,max=1000"`
}

// ToFields converts the request into use case fields.
func (r ExpenseRequest) ToFields() (expense.ExpenseFields, error) {
	vehicleID, err := ParseOptionalUUID(r.VehicleID)
	if err != nil {
		return expense.ExpenseFields{}, fmt.Errorf("invalid vehicle_id: %w", err)
	}
	driverID, err := ParseOptionalUUID(r.DriverID)
	if err != nil {
		return expense.ExpenseFields{}, fmt.Errorf("invalid driver_id: %w", err)
	}
	freightID, err := ParseOptionalUUID(r.FreightID)
	if err != nil {
		return expense.ExpenseFields{}, fmt.Errorf("invalid freight_id: %w", err)
	}
	return expense.ExpenseFields{
		Name:          r.Name,
		Description:   r.Description,
		Category:      r.Category,
		Amount:        decimal.NewFromFloat(r.Amount),
		VehicleID:     vehicleID,
		DriverID:      driverID,
		FreightID:     freightID,
		PaymentMethod: r.PaymentMethod,
		Installments:  r.Installments,
		ReceiptURL:    r.ReceiptURL,
	}, nil
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Amount        string    `json:"amount"`
	VehicleID     *string   `json:"vehicle_id,omitempty"`
	DriverID      *string   `json:"driver_id,omitempty"`
	FreightID     *string   `json:"freight_id,omitempty"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	Installments  *int      `json:"installments,omitempty"`
	ReceiptURL    string    `json:"receipt_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ExpenseDataResponse is the envelope of GET /api/despesas.
type ExpenseDataResponse struct {
	Data []ExpenseResponse `json:"data"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID.String(),
		Name:          e.Name,
		Description:   e.Description,
		Category:      e.Category,
		Amount:        money(e.Amount),
		VehicleID:     uuidString(e.VehicleID),
		DriverID:      uuidString(e.DriverID),
		FreightID:     uuidString(e.FreightID),
		PaymentMethod: e.PaymentMethod,
		Installments:  e.Installments,
		ReceiptURL:    e.ReceiptURL,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// ToExpenseResponses converts a list of expenses to ExpenseResponse DTOs.
func ToExpenseResponses(expenses []*entity.Expense) []ExpenseResponse {
	items := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		items[i] = ToExpenseResponse(e)
	}
	return items
}

// SuggestCategoryRequest represents the request body for an expense category suggestion.
type SuggestCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description,omitempty" binding:"omitempty,max=1000"`
}

// SuggestCategoryResponse represents the suggested expense category.
type SuggestCategoryResponse struct {
	Category string `json:"category"`
	FromAI   bool   `json:"from_ai"`
}

// CashFlowEntryResponse represents one row of the cash-flow ledger.
type CashFlowEntryResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Amount      string    `json:"amount"`
	VehicleID   *string   `json:"vehicle_id,omitempty"`
	DriverID    *string   `json:"driver_id,omitempty"`
	FreightID   *string   `json:"freight_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CashFlowResponse represents the cash-flow ledger and its summaries.
type CashFlowResponse struct {
	Entries      []CashFlowEntryResponse `json:"entries"`
	TotalIncome  string                  `json:"total_income"`
	TotalExpense string                  `json:"total_expense"`
	Balance      string                  `json:"balance"`
}

// ToCashFlowResponse converts a domain CashFlow to a CashFlowResponse DTO.
func ToCashFlowResponse(cf *entity.CashFlow) CashFlowResponse {
	entries := make([]CashFlowEntryResponse, len(cf.Entries))
	for i, e := range cf.Entries {
		entries[i] = CashFlowEntryResponse{
			ID:          e.ID.String(),
			Type:        string(e.Type),
			Name:        e.Name,
			Description: e.Description,
			Category:    e.Category,
			Amount:      money(e.Amount),
			VehicleID:   uuidString(e.VehicleID),
			DriverID:    uuidString(e.DriverID),
			FreightID:   uuidString(e.FreightID),
			CreatedAt:   e.CreatedAt,
		}
	}
	return CashFlowResponse{
		Entries:      entries,
		TotalIncome:  money(cf.TotalIncome),
		TotalExpense: money(cf.TotalExpense),
		Balance:      money(cf.Balance),
	}
}
