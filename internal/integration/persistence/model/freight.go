// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/freight-manager/backend/internal/domain/entity"
)

// FreightModel represents the freights table in the database.
type FreightModel struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name        string           `gorm:"type:varchar(150);not null"`
	Origin      string           `gorm:"type:varchar(150);not null"`
	Destination string           `gorm:"type:varchar(150);not null"`
	DistanceKm  *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Weights     pq.Float64Array  `gorm:"type:text;not null"` // Array literal format, e.g. {10,5.5}
	PricePerTon decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	TotalValue  decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	Settled     bool             `gorm:"not null;default:false;index"`
	VehicleID   *uuid.UUID       `gorm:"type:uuid;index"`
	DriverID    *uuid.UUID       `gorm:"type:uuid;index"`
	BrokerID    *uuid.UUID       `gorm:"type:uuid;index"`
	CreatedAt   time.Time        `gorm:"not null;index"`
	UpdatedAt   time.Time        `gorm:"not null"`
}

// TableName returns the table name for the FreightModel.
func (FreightModel) TableName() string {
	return "freights"
}

// ToEntity converts a FreightModel to a domain Freight entity.
func (m *FreightModel) ToEntity() *entity.Freight {
	weights := make([]decimal.Decimal, len(m.Weights))
	for i, w := range m.Weights {
		weights[i] = decimal.NewFromFloat(w).Round(entity.WeightScale)
	}

	return &entity.Freight{
		ID:          m.ID,
		Name:        m.Name,
		Origin:      m.Origin,
		Destination: m.Destination,
		DistanceKm:  m.DistanceKm,
		Weights:     weights,
		PricePerTon: m.PricePerTon,
		TotalValue:  m.TotalValue,
		Settled:     m.Settled,
		VehicleID:   m.VehicleID,
		DriverID:    m.DriverID,
		BrokerID:    m.BrokerID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FreightFromEntity creates a FreightModel from a domain Freight entity.
func FreightFromEntity(freight *entity.Freight) *FreightModel {
	weights := make(pq.Float64Array, len(freight.Weights))
	for i, w := range freight.Weights {
		weights[i] = w.InexactFloat64()
	}

	return &FreightModel{
		ID:          freight.ID,
		Name:        freight.Name,
		Origin:      freight.Origin,
		Destination: freight.Destination,
		DistanceKm:  freight.DistanceKm,
		Weights:     weights,
		PricePerTon: freight.PricePerTon,
		TotalValue:  freight.TotalValue,
		Settled:     freight.Settled,
		VehicleID:   freight.VehicleID,
		DriverID:    freight.DriverID,
		BrokerID:    freight.BrokerID,
		CreatedAt:   freight.CreatedAt,
		UpdatedAt:   freight.UpdatedAt,
	}
}
