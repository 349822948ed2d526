// Package cashflow contains the combined income/expense ledger use cases.
package cashflow

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freight-manager/backend/internal/domain/entity"
)

// Aggregate merges incomes and expenses into one ledger ordered by creation time, newest first.
// With a vehicle filter only entries reaching that vehicle are kept: expenses through their own
// vehicle, incomes through their freight. Incomes without freight only appear unfiltered.
func Aggregate(incomes []*entity.IncomeWithFreight, expenses []*entity.Expense, vehicleID *uuid.UUID) *entity.CashFlow {
	entries := make([]*entity.CashFlowEntry, 0, len(incomes)+len(expenses))
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero

	for _, item := range incomes {
		if vehicleID != nil && !sameID(item.VehicleID(), *vehicleID) {
			continue
		}

		var driverID *uuid.UUID
		if item.Freight != nil {
			driverID = item.Freight.DriverID
		}

		income := item.Income
		entries = append(entries, &entity.CashFlowEntry{
			ID:          income.ID,
			Type:        entity.CashFlowEntryIncome,
			Name:        income.Name,
			Description: income.Description,
			Category:    income.Category,
			Amount:      income.Amount,
			VehicleID:   item.VehicleID(),
			DriverID:    driverID,
			FreightID:   income.FreightID,
			CreatedAt:   income.CreatedAt,
		})
		totalIncome = totalIncome.Add(income.Amount)
	}

	for _, expense := range expenses {
		if vehicleID != nil && !sameID(expense.VehicleID, *vehicleID) {
			continue
		}

		entries = append(entries, &entity.CashFlowEntry{
			ID:          expense.ID,
			Type:        entity.CashFlowEntryExpense,
			Name:        expense.Name,
			Description: expense.Description,
			Category:    expense.Category,
			Amount:      expense.Amount,
			VehicleID:   expense.VehicleID,
			DriverID:    expense.DriverID,
			FreightID:   expense.FreightID,
			CreatedAt:   expense.CreatedAt,
		})
		totalExpense = totalExpense.Add(expense.Amount)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	return &entity.CashFlow{
		Entries:      entries,
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome.Sub(totalExpense),
	}
}

func sameID(id *uuid.UUID, want uuid.UUID) bool {
	return id != nil && *id == want
}
