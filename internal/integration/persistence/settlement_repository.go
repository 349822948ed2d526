// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
	domainerror "github.com/freight-manager/backend/internal/domain/error"
	"github.com/freight-manager/backend/internal/domain/valueobject"
	"github.com/freight-manager/backend/internal/integration/persistence/model"
)

// settlementRepository implements the adapter.SettlementRepository interface.
// Every read and write of a transition goes through the transaction handle.
type settlementRepository struct {
	db    *gorm.DB
	cache adapter.Cache
}

// NewSettlementRepository creates a new settlement repository instance.
func NewSettlementRepository(db *gorm.DB, cache adapter.Cache) adapter.SettlementRepository {
	return &settlementRepository{
		db:    db,
		cache: cache,
	}
}

// Settle runs the Open -> Settled transition. A freight that is already settled, or that
// already carries a settlement income, gets no additional income.
func (r *settlementRepository) Settle(ctx context.Context, freightID uuid.UUID) (*adapter.SettleResult, error) {
	var settleResult *adapter.SettleResult

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		freight, err := lockFreight(tx, freightID)
		if err != nil {
			return err
		}

		incomes, err := freightIncomes(tx, freightID)
		if err != nil {
			return err
		}

		previous := valueobject.SettlementIncomes(freight, incomes)
		if freight.Settled || len(previous) > 0 {
			if !freight.Settled {
				if err := setSettled(tx, freight, true); err != nil {
					return err
				}
			}
			settleResult = &adapter.SettleResult{
				Freight: freight,
				Plan: valueobject.SettlementPlan{
					AdvanceTotal: entity.SumIncomes(incomes).Sub(entity.SumIncomes(previous)),
					FinalAmount:  entity.SumIncomes(previous),
				},
				AlreadySettled: true,
			}
			return nil
		}

		plan := valueobject.PlanSettlement(freight, incomes)
		if plan.Income != nil {
			if err := tx.Omit("Freight").Create(model.IncomeFromEntity(plan.Income)).Error; err != nil {
				return domainerror.NewStoreError("create settlement income", err)
			}
		}

		if err := setSettled(tx, freight, true); err != nil {
			return err
		}

		settleResult = &adapter.SettleResult{
			Freight: freight,
			Plan:    plan,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidateFreights(ctx, r.cache, &freightID)
	return settleResult, nil
}

// Reactivate runs the Settled -> Open transition. Calling it on an open freight
// removes nothing and leaves the flag false.
func (r *settlementRepository) Reactivate(ctx context.Context, freightID uuid.UUID) (*adapter.ReactivateResult, error) {
	var reactivateResult *adapter.ReactivateResult

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		freight, err := lockFreight(tx, freightID)
		if err != nil {
			return err
		}

		incomes, err := freightIncomes(tx, freightID)
		if err != nil {
			return err
		}

		settlementIncomes := valueobject.SettlementIncomes(freight, incomes)
		if len(settlementIncomes) > 0 {
			ids := make([]uuid.UUID, len(settlementIncomes))
			for i, income := range settlementIncomes {
				ids[i] = income.ID
			}
			if err := tx.Delete(&model.IncomeModel{}, "id IN ?", ids).Error; err != nil {
				return domainerror.NewStoreError("delete settlement incomes", err)
			}
		}

		if freight.Settled {
			if err := setSettled(tx, freight, false); err != nil {
				return err
			}
		}

		reactivateResult = &adapter.ReactivateResult{
			Freight:        freight,
			RemovedIncomes: len(settlementIncomes),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidateFreights(ctx, r.cache, &freightID)
	return reactivateResult, nil
}

// lockFreight loads the freight row with SELECT ... FOR UPDATE.
func lockFreight(tx *gorm.DB, id uuid.UUID) (*entity.Freight, error) {
	var freightModel model.FreightModel
	result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&freightModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrFreightNotFound
		}
		return nil, domainerror.NewStoreError("lock freight", result.Error)
	}
	return freightModel.ToEntity(), nil
}

func freightIncomes(tx *gorm.DB, freightID uuid.UUID) ([]*entity.Income, error) {
	var incomeModels []model.IncomeModel
	if err := tx.Where("freight_id = ?", freightID).Find(&incomeModels).Error; err != nil {
		return nil, domainerror.NewStoreError("list freight incomes", err)
	}

	incomes := make([]*entity.Income, len(incomeModels))
	for i, im := range incomeModels {
		incomes[i] = im.ToEntity()
	}
	return incomes, nil
}

func setSettled(tx *gorm.DB, freight *entity.Freight, settled bool) error {
	now := time.Now().UTC()
	err := tx.Model(&model.FreightModel{}).
		Where("id = ?", freight.ID).
		Updates(map[string]any{
			"settled":    settled,
			"updated_at": now,
		}).Error
	if err != nil {
		return domainerror.NewStoreError("update settled flag", err)
	}

	freight.Settled = settled
	freight.UpdatedAt = now
	return nil
}
