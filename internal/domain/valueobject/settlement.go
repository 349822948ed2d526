// Package valueobject contains immutable value objects for the domain layer.
package valueobject

import (
	"github.com/shopspring/decimal"

	"github.com/freight-manager/backend/internal/domain/entity"
)

// SettlementPlan describes the writes of an Open -> Settled transition.
type SettlementPlan struct {
	AdvanceTotal decimal.Decimal
	FinalAmount  decimal.Decimal
	// Income is nil when the advances already cover the freight value.
	Income *entity.Income
}

// PlanSettlement computes the remaining receivable of a freight given the incomes already
// attributed to it and builds the settlement income when something is still owed.
func PlanSettlement(freight *entity.Freight, attributed []*entity.Income) SettlementPlan {
	advanceTotal := entity.SumIncomes(attributed)
	finalAmount := freight.TotalValue.Sub(advanceTotal)

	plan := SettlementPlan{
		AdvanceTotal: advanceTotal,
		FinalAmount:  finalAmount,
	}
	if !finalAmount.IsPositive() {
		return plan
	}

	freightID := freight.ID
	income := entity.NewIncome(
		entity.SettlementIncomeName(freight.Name),
		entity.SettlementIncomeDescription(freight.Origin, freight.Destination),
		finalAmount,
		entity.SettlementIncomeCategory,
		&freightID,
	)
	income.Origin = entity.IncomeOriginSettlement
	plan.Income = income

	return plan
}

// SettlementIncomes filters the incomes that were written by a previous settlement of the freight.
func SettlementIncomes(freight *entity.Freight, attributed []*entity.Income) []*entity.Income {
	var matches []*entity.Income
	for _, income := range attributed {
		if income.IsSettlementFor(freight) {
			matches = append(matches, income)
		}
	}
	return matches
}
