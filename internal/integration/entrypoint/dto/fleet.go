package dto

import (
	"time"

	"github.com/freight-manager/backend/internal/domain/entity"
)

// VehicleRequest represents the request body for vehicle creation and update.
type VehicleRequest struct {
	Plate string `json:"plate" binding:"required,max=20"`
	Model string `json:"model" binding:"required,max=100"`
	Year  *int   `json:"year,omitempty" binding:"omitempty,min=1900,max=2100"`
}

// VehicleResponse represents a single vehicle in API responses.
type VehicleResponse struct {
	ID        string    `json:"id"`
	Plate     string    `json:"plate"`
	Model     string    `json:"model"`
	Year      *int      `json:"year,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// VehicleListResponse represents the response for listing vehicles.
type VehicleListResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}

// ToVehicleResponse converts a domain Vehicle entity to a VehicleResponse DTO.
func ToVehicleResponse(v *entity.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:        v.ID.String(),
		Plate:     v.Plate,
		Model:     v.Model,
		Year:      v.Year,
		CreatedAt: v.CreatedAt,
	}
}

// ToVehicleListResponse converts a list of vehicles to VehicleListResponse.
func ToVehicleListResponse(vehicles []*entity.Vehicle) VehicleListResponse {
	items := make([]VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		items[i] = ToVehicleResponse(v)
	}
	return VehicleListResponse{Vehicles: items}
}

// DriverRequest represents the request body for driver creation and update.
type DriverRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Document string `json:"document,omitempty" binding:"omitempty,max=50"`
	Phone    string `json:"phone,omitempty" binding:"omitempty,max=30"`
}

// DriverResponse represents a single driver in API responses.
type DriverResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// DriverListResponse represents the response for listing drivers.
type DriverListResponse struct {
	Drivers []DriverResponse `json:"drivers"`
}

// ToDriverResponse converts a domain Driver entity to a DriverResponse DTO.
func ToDriverResponse(d *entity.Driver) DriverResponse {
	return DriverResponse{
		ID:        d.ID.String(),
		Name:      d.Name,
		Document:  d.Document,
		Phone:     d.Phone,
		CreatedAt: d.CreatedAt,
	}
}

// ToDriverListResponse converts a list of drivers to DriverListResponse.
func ToDriverListResponse(drivers []*entity.Driver) DriverListResponse {
	items := make([]DriverResponse, len(drivers))
	for i, d := range drivers {
		items[i] = ToDriverResponse(d)
	}
	return DriverListResponse{Drivers: items}
}

// BrokerRequest represents the request body for broker creation and update.
type BrokerRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Email string `json:"email,omitempty" binding:"omitempty,max=255"`
	Phone string `json:"phone,omitempty" binding:"omitempty,max=30"`
}

// BrokerResponse represents a single broker in API responses.
type BrokerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// BrokerListResponse represents the response for listing brokers.
type BrokerListResponse struct {
	Brokers []BrokerResponse `json:"brokers"`
}

// ToBrokerResponse converts a domain Broker entity to a BrokerResponse DTO.
func ToBrokerResponse(b *entity.Broker) BrokerResponse {
	return BrokerResponse{
		ID:        b.ID.String(),
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		CreatedAt: b.CreatedAt,
	}
}

// ToBrokerListResponse converts a list of brokers to BrokerListResponse.
func ToBrokerListResponse(brokers []*entity.Broker) BrokerListResponse {
	items := make([]BrokerResponse, len(brokers))
	for i, b := range brokers {
		items[i] = ToBrokerResponse(b)
	}
	return BrokerListResponse{Brokers: items}
}
