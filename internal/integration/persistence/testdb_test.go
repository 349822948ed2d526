package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/freight-manager/backend/internal/domain/entity"
	"github.com/freight-manager/backend/internal/integration/persistence/model"
)

// newTestDB opens a private in-memory database with every table migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = dbSQL.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	if err := db.AutoMigrate(Models()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// insertFreight stores a freight of 10t + 5t at 100 per ton (total 1500).
func insertFreight(t *testing.T, db *gorm.DB, name string) *entity.Freight {
	t.Helper()

	freight := entity.NewFreight(
		name, "Sorriso", "Santos", nil,
		[]decimal.Decimal{decimal.NewFromInt(10), decimal.NewFromInt(5)},
		decimal.NewFromInt(100),
		nil, nil, nil,
	)
	if err := db.Create(model.FreightFromEntity(freight)).Error; err != nil {
		t.Fatalf("failed to insert freight: %v", err)
	}
	return freight
}

func insertIncome(t *testing.T, db *gorm.DB, income *entity.Income) {
	t.Helper()

	if err := db.Omit("Freight").Create(model.IncomeFromEntity(income)).Error; err != nil {
		t.Fatalf("failed to insert income: %v", err)
	}
}

func countIncomes(t *testing.T, db *gorm.DB, freight *entity.Freight) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&model.IncomeModel{}).Where("freight_id = ?", freight.ID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count incomes: %v", err)
	}
	return count
}

func reloadFreight(t *testing.T, db *gorm.DB, freight *entity.Freight) *entity.Freight {
	t.Helper()

	reloaded, err := NewFreightRepository(db, nil).FindByID(context.Background(), freight.ID)
	if err != nil {
		t.Fatalf("failed to reload freight: %v", err)
	}
	return reloaded
}
