package persistence

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/freight-manager/backend/internal/domain/entity"
	"github.com/freight-manager/backend/internal/integration/persistence/model"
)

// Models returns every table managed by auto-migration.
func Models() []interface{} {
	return []interface{}{
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.VehicleModel{},
		&model.DriverModel{},
		&model.BrokerModel{},
		&model.FreightModel{},
		&model.IncomeModel{},
		&model.ExpenseModel{},
		&model.CategoryModel{},
		&model.EmailQueueModel{},
	}
}

// BackfillSettlementOrigins tags the settlement incomes written before the origin column
// existed. Only settled freights are considered and at most one income per freight is tagged.
func BackfillSettlementOrigins(ctx context.Context, db *gorm.DB) (int, error) {
	var freightModels []model.FreightModel
	if err := db.WithContext(ctx).Where("settled = ?", true).Find(&freightModels).Error; err != nil {
		return 0, fmt.Errorf("failed to list settled freights: %w", err)
	}

	tagged := 0
	for _, fm := range freightModels {
		freight := fm.ToEntity()

		incomes, err := freightIncomes(db.WithContext(ctx), freight.ID)
		if err != nil {
			return tagged, err
		}

		var candidate *entity.Income
		for _, income := range incomes {
			if income.IsSettlementFor(freight) {
				candidate = nil
				break
			}
			if candidate == nil && income.LooksLikeSettlementFor(freight) {
				candidate = income
			}
		}
		if candidate == nil {
			continue
		}

		err = db.WithContext(ctx).
			Model(&model.IncomeModel{}).
			Where("id = ?", candidate.ID).
			Update("origin", string(entity.IncomeOriginSettlement)).Error
		if err != nil {
			return tagged, fmt.Errorf("failed to tag settlement income: %w", err)
		}
		tagged++
	}

	if tagged > 0 {
		slog.Info("Tagged legacy settlement incomes", "count", tagged)
	}
	return tagged, nil
}
