package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
	domainerror "github.com/freight-manager/backend/internal/domain/error"
	"github.com/freight-manager/backend/internal/integration/cache"
)

func newRedisCache(t *testing.T) adapter.Cache {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, time.Minute)
}

func TestIncomeRepository_FindByFreightIDCache(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	c := newRedisCache(t)
	incomes := NewIncomeRepository(db, c)
	settlements := NewSettlementRepository(db, c)

	freight := insertFreight(t, db, "Soja")
	freightID := freight.ID
	if err := incomes.Create(ctx, entity.NewIncome("Adiantamento", "", decimal.NewFromInt(500), "Adiantamento", &freightID)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := incomes.FindByFreightID(ctx, freight.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 income, got %d", len(first))
	}

	t.Run("serves cached rows", func(t *testing.T) {
		var cached []*entity.Income
		if err := c.Get(ctx, incomesByFreightKey(freight.ID), &cached); err != nil {
			t.Fatalf("expected cached incomes, got %v", err)
		}
		if len(cached) != 1 || !cached[0].Amount.Equal(decimal.NewFromInt(500)) {
			t.Errorf("unexpected cached incomes %+v", cached)
		}
	})

	t.Run("settlement drops the cached rows", func(t *testing.T) {
		if _, err := settlements.Settle(ctx, freight.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var cached []*entity.Income
		if err := c.Get(ctx, incomesByFreightKey(freight.ID), &cached); !errors.Is(err, adapter.ErrCacheMiss) {
			t.Fatalf("expected cache miss after settlement, got %v", err)
		}

		after, err := incomes.FindByFreightID(ctx, freight.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(after) != 2 {
			t.Errorf("expected advance and settlement income, got %d", len(after))
		}
	})
}

func TestIncomeRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewIncomeRepository(db, cache.NewNoopCache())

	freight := insertFreight(t, db, "Soja")
	freightID := freight.ID
	attributed := entity.NewIncome("Adiantamento", "", decimal.NewFromInt(500), "Adiantamento", &freightID)
	general := entity.NewIncome("Venda de sucata", "", decimal.NewFromInt(80), "Outros", nil)
	for _, income := range []*entity.Income{attributed, general} {
		if err := repo.Create(ctx, income); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	tests := []struct {
		name     string
		filter   adapter.IncomeFilter
		expected []uuid.UUID
	}{
		{name: "no filter", filter: adapter.IncomeFilter{}, expected: []uuid.UUID{attributed.ID, general.ID}},
		{name: "by freight", filter: adapter.IncomeFilter{FreightID: &freightID}, expected: []uuid.UUID{attributed.ID}},
		{name: "general only", filter: adapter.IncomeFilter{GeneralOnly: true}, expected: []uuid.UUID{general.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindAll(ctx, tt.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d incomes, got %d", len(tt.expected), len(got))
			}
			seen := map[uuid.UUID]bool{}
			for _, income := range got {
				seen[income.ID] = true
			}
			for _, id := range tt.expected {
				if !seen[id] {
					t.Errorf("expected income %s in result", id)
				}
			}
		})
	}

	t.Run("with freight", func(t *testing.T) {
		got, err := repo.FindAllWithFreight(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, row := range got {
			switch row.Income.ID {
			case attributed.ID:
				if row.Freight == nil || row.Freight.ID != freight.ID {
					t.Error("expected attributed income to carry its freight")
				}
			case general.ID:
				if row.Freight != nil {
					t.Error("expected general income without freight")
				}
			}
		}
	})
}

func TestIncomeRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewIncomeRepository(newTestDB(t), cache.NewNoopCache())

	if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrIncomeNotFound) {
		t.Errorf("FindByID: expected ErrIncomeNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, uuid.New()); !errors.Is(err, domainerror.ErrIncomeNotFound) {
		t.Errorf("Delete: expected ErrIncomeNotFound, got %v", err)
	}
}

func TestFreightRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	freights := NewFreightRepository(db, cache.NewNoopCache())
	incomes := NewIncomeRepository(db, cache.NewNoopCache())
	expenses := NewExpenseRepository(db, cache.NewNoopCache())

	freight := insertFreight(t, db, "Soja")
	freightID := freight.ID
	income := entity.NewIncome("Adiantamento", "", decimal.NewFromInt(500), "Adiantamento", &freightID)
	if err := incomes.Create(ctx, income); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expense := entity.NewExpense("Diesel", "", "Combustível", decimal.NewFromInt(300), nil, nil, &freightID, "pix", nil, "")
	if err := expenses.Create(ctx, expense); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := freights.Delete(ctx, freight.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := freights.FindByID(ctx, freight.ID); !errors.Is(err, domainerror.ErrFreightNotFound) {
		t.Errorf("expected freight to be gone, got %v", err)
	}

	storedIncome, err := incomes.FindByID(ctx, income.ID)
	if err != nil {
		t.Fatalf("expected income to survive, got %v", err)
	}
	if storedIncome.FreightID != nil {
		t.Error("expected income to become general")
	}

	storedExpense, err := expenses.FindByID(ctx, expense.ID)
	if err != nil {
		t.Fatalf("expected expense to survive, got %v", err)
	}
	if storedExpense.FreightID != nil {
		t.Error("expected expense to become general")
	}

	if err := freights.Delete(ctx, freight.ID); !errors.Is(err, domainerror.ErrFreightNotFound) {
		t.Errorf("expected ErrFreightNotFound on second delete, got %v", err)
	}
}

func TestFreightRepository_DeleteSettled(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	freights := NewFreightRepository(db, cache.NewNoopCache())
	incomes := NewIncomeRepository(db, cache.NewNoopCache())

	freight := insertFreight(t, db, "Soja")
	freightID := freight.ID
	advance := entity.NewIncome("Adiantamento", "", decimal.NewFromInt(500), "Adiantamento", &freightID)
	if err := incomes.Create(ctx, advance); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewSettlementRepository(db, cache.NewNoopCache()).Settle(ctx, freight.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := freights.Delete(ctx, freight.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, err := incomes.FindAll(ctx, adapter.IncomeFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected only the advance to remain, got %d incomes", len(all))
	}
	if all[0].ID != advance.ID || all[0].FreightID != nil {
		t.Errorf("expected the advance as a general income, got %+v", all[0])
	}
	if all[0].Origin == entity.IncomeOriginSettlement {
		t.Error("expected no settlement income to outlive its freight")
	}
}

func TestFreightRepository_TotalSurvivesReload(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	freights := NewFreightRepository(db, cache.NewNoopCache())

	freight := entity.NewFreight("Trigo", "Cascavel", "Paranagua", nil,
		[]decimal.Decimal{decimal.RequireFromString("12.345"), decimal.RequireFromString("7.1")},
		decimal.RequireFromString("88.888"), nil, nil, nil)
	if err := freights.Create(ctx, freight); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded, err := freights.FindByID(ctx, freight.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reloaded.PricePerTon.Equal(freight.PricePerTon) {
		t.Errorf("expected price %s, got %s", freight.PricePerTon, reloaded.PricePerTon)
	}
	if !reloaded.TotalWeight().Equal(decimal.RequireFromString("19.445")) {
		t.Errorf("expected total weight 19.445, got %s", reloaded.TotalWeight())
	}
	expected := reloaded.TotalWeight().Mul(reloaded.PricePerTon).Round(entity.PriceScale)
	if !reloaded.TotalValue.Equal(expected) {
		t.Errorf("expected stored total %s, got %s", expected, reloaded.TotalValue)
	}
}

func TestFreightRepository_UpdateKeepsSettledFlag(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	freights := NewFreightRepository(db, cache.NewNoopCache())
	freight := insertFreight(t, db, "Soja")

	if _, err := NewSettlementRepository(db, cache.NewNoopCache()).Settle(ctx, freight.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	freight.Name = "Soja em grão"
	freight.Settled = false
	if err := freights.Update(ctx, freight); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := reloadFreight(t, db, freight)
	if stored.Name != "Soja em grão" {
		t.Errorf("expected updated name, got %q", stored.Name)
	}
	if !stored.Settled {
		t.Error("expected settled flag to be kept by Update")
	}
	if len(stored.Weights) != 2 || !stored.TotalValue.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("unexpected stored cargo %v / %s", stored.Weights, stored.TotalValue)
	}
}
