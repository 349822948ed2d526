// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freight-manager/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Description   string          `gorm:"type:text"`
	Category      string          `gorm:"type:varchar(50);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	VehicleID     *uuid.UUID      `gorm:"type:uuid;index"`
	DriverID      *uuid.UUID      `gorm:"type:uuid;index"`
	FreightID     *uuid.UUID      `gorm:"type:uuid;index"`
	PaymentMethod string          `gorm:"type:varchar(20)"`
	Installments  *int            `gorm:"type:integer"`
	ReceiptURL    string          `gorm:"type:varchar(500)"`
	CreatedAt     time.Time       `gorm:"not null;index"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		Category:      m.Category,
		Amount:        m.Amount,
		VehicleID:     m.VehicleID,
		DriverID:      m.DriverID,
		FreightID:     m.FreightID,
		PaymentMethod: m.PaymentMethod,
		Installments:  m.Installments,
		ReceiptURL:    m.ReceiptURL,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:            expense.ID,
		Name:          expense.Name,
		Description:   expense.Description,
		Category:      expense.Category,
		Amount:        expense.Amount.Round(2),
		VehicleID:     expense.VehicleID,
		DriverID:      expense.DriverID,
		FreightID:     expense.FreightID,
		PaymentMethod: expense.PaymentMethod,
		Installments:  expense.Installments,
		ReceiptURL:    expense.ReceiptURL,
		CreatedAt:     expense.CreatedAt,
		UpdatedAt:     expense.UpdatedAt,
	}
}
