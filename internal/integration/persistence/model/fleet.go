// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/domain/entity"
)

// VehicleModel represents the vehicles table in the database.
type VehicleModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Plate     string    `gorm:"type:varchar(10);uniqueIndex;not null"`
	Model     string    `gorm:"type:varchar(100);not null"`
	Year      *int      `gorm:"type:integer"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the VehicleModel.
func (VehicleModel) TableName() string {
	return "vehicles"
}

// ToEntity converts a VehicleModel to a domain Vehicle entity.
func (m *VehicleModel) ToEntity() *entity.Vehicle {
	return &entity.Vehicle{
		ID:        m.ID,
		Plate:     m.Plate,
		Model:     m.Model,
		Year:      m.Year,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// VehicleFromEntity creates a VehicleModel from a domain Vehicle entity.
func VehicleFromEntity(vehicle *entity.Vehicle) *VehicleModel {
	return &VehicleModel{
		ID:        vehicle.ID,
		Plate:     vehicle.Plate,
		Model:     vehicle.Model,
		Year:      vehicle.Year,
		CreatedAt: vehicle.CreatedAt,
		UpdatedAt: vehicle.UpdatedAt,
	}
}

// DriverModel represents the drivers table in the database.
type DriverModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(150);not null"`
	Document  string    `gorm:"type:varchar(20)"`
	Phone     string    `gorm:"type:varchar(20)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the DriverModel.
func (DriverModel) TableName() string {
	return "drivers"
}

// ToEntity converts a DriverModel to a domain Driver entity.
func (m *DriverModel) ToEntity() *entity.Driver {
	return &entity.Driver{
		ID:        m.ID,
		Name:      m.Name,
		Document:  m.Document,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// DriverFromEntity creates a DriverModel from a domain Driver entity.
func DriverFromEntity(driver *entity.Driver) *DriverModel {
	return &DriverModel{
		ID:        driver.ID,
		Name:      driver.Name,
		Document:  driver.Document,
		Phone:     driver.Phone,
		CreatedAt: driver.CreatedAt,
		UpdatedAt: driver.UpdatedAt,
	}
}

// BrokerModel represents the brokers table in the database.
type BrokerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(150);not null"`
	Email     string    `gorm:"type:varchar(255)"`
	Phone     string    `gorm:"type:varchar(20)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the BrokerModel.
func (BrokerModel) TableName() string {
	return "brokers"
}

// ToEntity converts a BrokerModel to a domain Broker entity.
func (m *BrokerModel) ToEntity() *entity.Broker {
	return &entity.Broker{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// BrokerFromEntity creates a BrokerModel from a domain Broker entity.
func BrokerFromEntity(broker *entity.Broker) *BrokerModel {
	return &BrokerModel{
		ID:        broker.ID,
		Name:      broker.Name,
		Email:     broker.Email,
		Phone:     broker.Phone,
		CreatedAt: broker.CreatedAt,
		UpdatedAt: broker.UpdatedAt,
	}
}
