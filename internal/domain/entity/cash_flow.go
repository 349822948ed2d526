// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashFlowEntryType tags a cash-flow entry as income or expense.
type CashFlowEntryType string

const (
	CashFlowEntryIncome  CashFlowEntryType = "income"
	CashFlowEntryExpense CashFlowEntryType = "expense"
)

// CashFlowEntry is one row of the combined ledger.
type CashFlowEntry struct {
	ID          uuid.UUID
	Type        CashFlowEntryType
	Name        string
	Description string
	Category    string
	Amount      decimal.Decimal
	VehicleID   *uuid.UUID
	DriverID    *uuid.UUID
	FreightID   *uuid.UUID
	CreatedAt   time.Time
}

// CashFlow is the ordered ledger and its summaries.
type CashFlow struct {
	Entries      []*CashFlowEntry
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}
