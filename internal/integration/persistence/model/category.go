// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/domain/entity"
)

// CategoryModel represents the categories lookup table in the database.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind      string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_categories_kind_name"`
	Name      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_categories_kind_name"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		Kind:      entity.CategoryKind(m.Kind),
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:        category.ID,
		Kind:      string(category.Kind),
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
	}
}
