package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func decimals(values ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.RequireFromString(v)
	}
	return out
}

func TestNewFreight_TotalValue(t *testing.T) {
	tests := []struct {
		name        string
		weights     []decimal.Decimal
		pricePerTon string
		expected    string
	}{
		{name: "two loads", weights: decimals("10", "5"), pricePerTon: "100", expected: "1500"},
		{name: "no loads", weights: nil, pricePerTon: "100", expected: "0"},
		{name: "fractional tons", weights: decimals("12.5", "7.25"), pricePerTon: "80.10", expected: "1581.98"},
		{name: "zero price", weights: decimals("30"), pricePerTon: "0", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFreight("Soja", "Sorriso", "Santos", nil, tt.weights, decimal.RequireFromString(tt.pricePerTon), nil, nil, nil)

			if !f.TotalValue.Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("expected total %s, got %s", tt.expected, f.TotalValue)
			}
			if f.Settled {
				t.Error("expected new freight to be open")
			}
			if f.Status() != FreightStatusOpen {
				t.Errorf("expected status open, got %s", f.Status())
			}
		})
	}
}

func TestFreight_RecalculateTotal(t *testing.T) {
	f := NewFreight("Milho", "Rio Verde", "Paranagua", nil, decimals("10"), decimal.NewFromInt(100), nil, nil, nil)

	f.Weights = decimals("10", "20")
	f.PricePerTon = decimal.NewFromInt(50)
	f.RecalculateTotal()

	if !f.TotalValue.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("expected total 1500, got %s", f.TotalValue)
	}
	if !f.TotalWeight().Equal(decimal.NewFromInt(30)) {
		t.Errorf("expected total weight 30, got %s", f.TotalWeight())
	}
}

func TestFreight_RecalculateTotalPrecision(t *testing.T) {
	f := NewFreight("Milho", "Rio Verde", "Paranagua", nil,
		decimals("10.0004", "2.5"), decimal.RequireFromString("100.125"), nil, nil, nil)

	if !f.PricePerTon.Equal(decimal.RequireFromString("100.13")) {
		t.Errorf("expected price rounded to cents, got %s", f.PricePerTon)
	}
	if !f.Weights[0].Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected weight rounded to kilograms, got %s", f.Weights[0])
	}
	if !f.TotalValue.Equal(decimal.RequireFromString("1251.63")) {
		t.Errorf("expected total 1251.63, got %s", f.TotalValue)
	}
}

func TestNewFreightBalance(t *testing.T) {
	f := NewFreight("Soja", "Sorriso", "Santos", nil, decimals("10", "5"), decimal.NewFromInt(100), nil, nil, nil)
	freightID := f.ID

	t.Run("sums attributed rows", func(t *testing.T) {
		incomes := []*Income{
			NewIncome("Adiantamento", "", decimal.NewFromInt(500), "Adiantamento", &freightID),
			NewIncome("Saldo", "", decimal.NewFromInt(1000), "Frete", &freightID),
		}
		expenses := []*Expense{
			{ID: uuid.New(), Amount: decimal.NewFromInt(300), FreightID: &freightID},
			{ID: uuid.New(), Amount: decimal.NewFromFloat(120.5), FreightID: &freightID},
		}

		balance := NewFreightBalance(f, incomes, expenses)

		if !balance.IncomeTotal.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("expected income total 1500, got %s", balance.IncomeTotal)
		}
		if !balance.ExpenseTotal.Equal(decimal.NewFromFloat(420.5)) {
			t.Errorf("expected expense total 420.5, got %s", balance.ExpenseTotal)
		}
		if !balance.Balance.Equal(decimal.NewFromFloat(1079.5)) {
			t.Errorf("expected balance 1079.5, got %s", balance.Balance)
		}
		if !balance.FreightValue.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("expected freight value 1500, got %s", balance.FreightValue)
		}
	})

	t.Run("empty ledger", func(t *testing.T) {
		balance := NewFreightBalance(f, nil, nil)

		if !balance.Balance.IsZero() {
			t.Errorf("expected zero balance, got %s", balance.Balance)
		}
		if balance.FreightID != f.ID {
			t.Errorf("expected freight id %s, got %s", f.ID, balance.FreightID)
		}
	})
}

func TestIncome_IsSettlementFor(t *testing.T) {
	f := NewFreight("Soja", "Sorriso", "Santos", nil, decimals("10"), decimal.NewFromInt(100), nil, nil, nil)
	freightID := f.ID
	otherID := uuid.New()

	settlement := NewIncome(SettlementIncomeName(f.Name), "", decimal.NewFromInt(1000), SettlementIncomeCategory, &freightID)
	settlement.Origin = IncomeOriginSettlement

	lookalike := NewIncome(SettlementIncomeName(f.Name), "", decimal.NewFromInt(1000), SettlementIncomeCategory, &freightID)

	foreign := NewIncome(SettlementIncomeName(f.Name), "", decimal.NewFromInt(1000), SettlementIncomeCategory, &otherID)
	foreign.Origin = IncomeOriginSettlement

	general := NewIncome("Venda de sucata", "", decimal.NewFromInt(50), "Outros", nil)

	tests := []struct {
		name     string
		income   *Income
		expected bool
	}{
		{name: "settlement origin on the same freight", income: settlement, expected: true},
		{name: "manual income with the settlement name", income: lookalike, expected: false},
		{name: "settlement of another freight", income: foreign, expected: false},
		{name: "general income", income: general, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.income.IsSettlementFor(f); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestIncome_LooksLikeSettlementFor(t *testing.T) {
	f := NewFreight("Soja", "Sorriso", "Santos", nil, decimals("10"), decimal.NewFromInt(100), nil, nil, nil)
	freightID := f.ID

	t.Run("legacy row following the naming convention", func(t *testing.T) {
		income := NewIncome(SettlementIncomeName(f.Name), "", decimal.NewFromInt(1000), SettlementIncomeCategory, &freightID)
		if !income.LooksLikeSettlementFor(f) {
			t.Error("expected legacy settlement row to be recognized")
		}
	})

	t.Run("wrong category", func(t *testing.T) {
		income := NewIncome(SettlementIncomeName(f.Name), "", decimal.NewFromInt(1000), "Adiantamento", &freightID)
		if income.LooksLikeSettlementFor(f) {
			t.Error("expected advance to be ignored")
		}
	})

	t.Run("already tagged", func(t *testing.T) {
		income := NewIncome(SettlementIncomeName(f.Name), "", decimal.NewFromInt(1000), SettlementIncomeCategory, &freightID)
		income.Origin = IncomeOriginSettlement
		if income.LooksLikeSettlementFor(f) {
			t.Error("expected tagged row to be ignored")
		}
	})
}
