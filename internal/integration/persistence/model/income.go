// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freight-manager/backend/internal/domain/entity"
)

// IncomeModel represents the incomes table in the database.
type IncomeModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category    string          `gorm:"type:varchar(50);not null"`
	FreightID   *uuid.UUID      `gorm:"type:uuid;index;uniqueIndex:idx_incomes_one_settlement,where:origin = 'settlement'"`
	Origin      string          `gorm:"type:varchar(20);not null;default:'manual'"`
	CreatedAt   time.Time       `gorm:"not null;index"`
	UpdatedAt   time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Freight *FreightModel `gorm:"foreignKey:FreightID;references:ID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "incomes"
}

// ToEntity converts an IncomeModel to a domain Income entity.
func (m *IncomeModel) ToEntity() *entity.Income {
	return &entity.Income{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Amount:      m.Amount,
		Category:    m.Category,
		FreightID:   m.FreightID,
		Origin:      entity.IncomeOrigin(m.Origin),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToEntityWithFreight converts an IncomeModel with its preloaded freight.
func (m *IncomeModel) ToEntityWithFreight() *entity.IncomeWithFreight {
	result := &entity.IncomeWithFreight{Income: m.ToEntity()}
	if m.Freight != nil {
		result.Freight = m.Freight.ToEntity()
	}
	return result
}

// IncomeFromEntity creates an IncomeModel from a domain Income entity.
func IncomeFromEntity(income *entity.Income) *IncomeModel {
	origin := income.Origin
	if origin == "" {
		origin = entity.IncomeOriginManual
	}

	return &IncomeModel{
		ID:          income.ID,
		Name:        income.Name,
		Description: income.Description,
		Amount:      income.Amount.Round(2),
		Category:    income.Category,
		FreightID:   income.FreightID,
		Origin:      string(origin),
		CreatedAt:   income.CreatedAt,
		UpdatedAt:   income.UpdatedAt,
	}
}
