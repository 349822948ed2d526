// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeOrigin tells manually entered incomes apart from the ones written by the settlement workflow.
type IncomeOrigin string

const (
	IncomeOriginManual     IncomeOrigin = "manual"
	IncomeOriginSettlement IncomeOrigin = "settlement"
)

const (
	// SettlementIncomePrefix prefixes the name of every settlement income.
	SettlementIncomePrefix = "Recebimento do frete: "
	// SettlementIncomeCategory is the category tag of settlement incomes.
	SettlementIncomeCategory = "Frete"
)

// Income represents a financial inflow, optionally attributed to a freight.
type Income struct {
	ID          uuid.UUID
	Name        string
	Description string
	Amount      decimal.Decimal
	Category    string
	FreightID   *uuid.UUID
	Origin      IncomeOrigin
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewIncome creates a new manually entered Income.
func NewIncome(name, description string, amount decimal.Decimal, category string, freightID *uuid.UUID) *Income {
	now := time.Now().UTC()

	return &Income{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Amount:      amount,
		Category:    category,
		FreightID:   freightID,
		Origin:      IncomeOriginManual,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SettlementIncomeName returns the name given to the settlement income of a freight.
func SettlementIncomeName(freightName string) string {
	return SettlementIncomePrefix + freightName
}

// SettlementIncomeDescription returns the route description of a settlement income.
func SettlementIncomeDescription(origin, destination string) string {
	return "Origem: " + origin + " - Destino: " + destination
}

// IsSettlementFor reports whether the income is the settlement income of the given freight.
// Only the origin is checked, a manual income named like a settlement income is kept.
func (i *Income) IsSettlementFor(freight *Freight) bool {
	if i.FreightID == nil || *i.FreightID != freight.ID {
		return false
	}
	return i.Origin == IncomeOriginSettlement
}

// LooksLikeSettlementFor reports whether a manual income follows the naming convention of
// settlement incomes. It is used once to tag rows written before the origin column existed.
func (i *Income) LooksLikeSettlementFor(freight *Freight) bool {
	return i.Origin != IncomeOriginSettlement &&
		i.Category == SettlementIncomeCategory &&
		strings.HasPrefix(i.Name, SettlementIncomeName(freight.Name))
}

// SumIncomes returns the arithmetic sum of the income amounts.
func SumIncomes(incomes []*Income) decimal.Decimal {
	total := decimal.Zero
	for _, income := range incomes {
		total = total.Add(income.Amount)
	}
	return total
}

// IncomeWithFreight is an income together with the freight it is attributed to, if any.
type IncomeWithFreight struct {
	Income  *Income
	Freight *Freight
}

// VehicleID returns the vehicle reached through the linked freight.
func (i *IncomeWithFreight) VehicleID() *uuid.UUID {
	if i.Freight == nil {
		return nil
	}
	return i.Freight.VehicleID
}
