// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FreightStatus represents the settlement state of a freight.
type FreightStatus string

const (
	FreightStatusOpen    FreightStatus = "open"
	FreightStatusSettled FreightStatus = "settled"
)

// Freight represents a single transport job.
type Freight struct {
	ID          uuid.UUID
	Name        string
	Origin      string
	Destination string
	DistanceKm  *decimal.Decimal
	Weights     []decimal.Decimal // Tons per load
	PricePerTon decimal.Decimal
	TotalValue  decimal.Decimal // Stored at write time, see RecalculateTotal
	Settled     bool
	VehicleID   *uuid.UUID
	DriverID    *uuid.UUID
	BrokerID    *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewFreight creates a new open Freight with its total value already computed.
func NewFreight(
	name, origin, destination string,
	distanceKm *decimal.Decimal,
	weights []decimal.Decimal,
	pricePerTon decimal.Decimal,
	vehicleID, driverID, brokerID *uuid.UUID,
) *Freight {
	now := time.Now().UTC()

	f := &Freight{
		ID:          uuid.New(),
		Name:        name,
		Origin:      origin,
		Destination: destination,
		DistanceKm:  distanceKm,
		Weights:     weights,
		PricePerTon: pricePerTon,
		VehicleID:   vehicleID,
		DriverID:    driverID,
		BrokerID:    brokerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.RecalculateTotal()
	return f
}

// TotalWeight returns the sum of all weight line items.
func (f *Freight) TotalWeight() decimal.Decimal {
	total := decimal.Zero
	for _, w := range f.Weights {
		total = total.Add(w)
	}
	return total
}

// Stored precision: prices in cents, weights in kilograms.
const (
	PriceScale  = 2
	WeightScale = 3
)

// RecalculateTotal brings Weights and PricePerTon to their stored precision and overwrites
// TotalValue with sum(weights) * price per ton. It must be called after any change to either.
func (f *Freight) RecalculateTotal() {
	for i, w := range f.Weights {
		f.Weights[i] = w.Round(WeightScale)
	}
	f.PricePerTon = f.PricePerTon.Round(PriceScale)
	f.TotalValue = f.TotalWeight().Mul(f.PricePerTon).Round(PriceScale)
}

// Status returns the settlement state derived from the settled flag.
func (f *Freight) Status() FreightStatus {
	if f.Settled {
		return FreightStatusSettled
	}
	return FreightStatusOpen
}

// FreightBalance is the financial position of one freight.
type FreightBalance struct {
	FreightID    uuid.UUID
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	Balance      decimal.Decimal
	FreightValue decimal.Decimal
}

// NewFreightBalance builds a FreightBalance from the attributed rows.
func NewFreightBalance(freight *Freight, incomes []*Income, expenses []*Expense) *FreightBalance {
	incomeTotal := SumIncomes(incomes)
	expenseTotal := SumExpenses(expenses)

	return &FreightBalance{
		FreightID:    freight.ID,
		IncomeTotal:  incomeTotal,
		ExpenseTotal: expenseTotal,
		Balance:      incomeTotal.Sub(expenseTotal),
		FreightValue: freight.TotalValue,
	}
}
