// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle represents a truck of the fleet.
type Vehicle struct {
	ID        uuid.UUID
	Plate     string
	Model     string
	Year      *int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewVehicle creates a new Vehicle entity.
func NewVehicle(plate, model string, year *int) *Vehicle {
	now := time.Now().UTC()
	return &Vehicle{
		ID:        uuid.New(),
		Plate:     plate,
		Model:     model,
		Year:      year,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Driver represents a driver that can be assigned to freights.
type Driver struct {
	ID        uuid.UUID
	Name      string
	Document  string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewDriver creates a new Driver entity.
func NewDriver(name, document, phone string) *Driver {
	now := time.Now().UTC()
	return &Driver{
		ID:        uuid.New(),
		Name:      name,
		Document:  document,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Broker represents the freight broker (agent) that contracts a freight.
type Broker struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBroker creates a new Broker entity.
func NewBroker(name, email, phone string) *Broker {
	now := time.Now().UTC()
	return &Broker{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
