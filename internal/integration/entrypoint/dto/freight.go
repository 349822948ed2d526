package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/freight-manager/backend/internal/application/usecase/freight"
	"github.com/freight-manager/backend/internal/application/usecase/settlement"
	"github.com/freight-manager/backend/internal/domain/entity"
)

// FreightRequest represents the request body for freight creation and update.
type FreightRequest struct {
	Name        string    `json:"name" binding:"required,max=255"`
	Origin      string    `json:"origin" binding:"required,max=255"`
	Destination string    `json:"destination" binding:"required,max=255"`
	DistanceKm  *float64  `json:"distance_km,omitempty"`
	Weights     []float64 `json:"weights" binding:"required,min=1"`
	PricePerTon float64   `json:"price_per_ton"`
	VehicleID   *string   `json:"vehicle_id,omitempty"`
	DriverID    *string   `json:"driver_id,omitempty"`
	BrokerID    *string   `json:"broker_id,omitempty"`
}

// ToFields converts the request into use case fields.
func (r FreightRequest) ToFields() (freight.FreightFields, error) {
	vehicleID, err := ParseOptionalUUID(r.VehicleID)
	if err != nil {
		return freight.FreightFields{}, fmt.Errorf("invalid vehicle_id: %w", err)
	}
	driverID, err := ParseOptionalUUID(r.DriverID)
	if err != nil {
		return freight.FreightFields{}, fmt.Errorf("invalid driver_id: %w", err)
	}
	brokerID, err := ParseOptionalUUID(r.BrokerID)
	if err != nil {
		return freight.FreightFields{}, fmt.Errorf("invalid broker_id: %w", err)
	}

	weights := make([]decimal.Decimal, len(r.Weights))
	for i, w := range r.Weights {
		weights[i] = decimal.NewFromFloat(w)
	}

	return freight.FreightFields{
		Name:        r.Name,
		Origin:      r.Origin,
		Destination: r.Destination,
		DistanceKm:  optionalDecimal(r.DistanceKm),
		Weights:     weights,
		PricePerTon: decimal.NewFromFloat(r.PricePerTon),
		VehicleID:   vehicleID,
		DriverID:    driverID,
		BrokerID:    brokerID,
	}, nil
}

// FreightResponse represents a single freight in API responses.
type FreightResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	DistanceKm  *string   `json:"distance_km,omitempty"`
	Weights     []string  `json:"weights"`
	TotalWeight string    `json:"total_weight"`
	PricePerTon string    `json:"price_per_ton"`
	TotalValue  string    `json:"total_value"`
	Settled     bool      `json:"settled"`
	Status      string    `json:"status"`
	VehicleID   *string   `json:"vehicle_id,omitempty"`
	DriverID    *string   `json:"driver_id,omitempty"`
	BrokerID    *string   `json:"broker_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FreightListResponse represents the response for listing freights.
type FreightListResponse struct {
	Freights []FreightResponse `json:"freights"`
}

// BalanceResponse represents the financial position of a freight.
type BalanceResponse struct {
	FreightID    string `json:"freight_id"`
	IncomeTotal  string `json:"income_total"`
	ExpenseTotal string `json:"expense_total"`
	Balance      string `json:"balance"`
	FreightValue string `json:"freight_value"`
}

// SettleResponse represents the outcome of a settle command.
type SettleResponse struct {
	Freight        FreightResponse `json:"freight"`
	AdvanceTotal   string          `json:"advance_total"`
	FinalAmount    string          `json:"final_amount"`
	Income         *IncomeResponse `json:"income,omitempty"`
	AlreadySettled bool            `json:"already_settled"`
}

// ReactivateResponse represents the outcome of a reactivate command.
type ReactivateResponse struct {
	Freight        FreightResponse `json:"freight"`
	RemovedIncomes int             `json:"removed_incomes"`
}

// ToFreightResponse converts a domain Freight entity to a FreightResponse DTO.
func ToFreightResponse(f *entity.Freight) FreightResponse {
	weights := make([]string, len(f.Weights))
	for i, w := range f.Weights {
		weights[i] = w.String()
	}

	return FreightResponse{
		ID:          f.ID.String(),
		Name:        f.Name,
		Origin:      f.Origin,
		Destination: f.Destination,
		DistanceKm:  optionalMoney(f.DistanceKm),
		Weights:     weights,
		TotalWeight: f.TotalWeight().String(),
		PricePerTon: money(f.PricePerTon),
		TotalValue:  money(f.TotalValue),
		Settled:     f.Settled,
		Status:      string(f.Status()),
		VehicleID:   uuidString(f.VehicleID),
		DriverID:    uuidString(f.DriverID),
		BrokerID:    uuidString(f.BrokerID),
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

// ToFreightListResponse converts a list of freights to FreightListResponse.
func ToFreightListResponse(freights []*entity.Freight) FreightListResponse {
	items := make([]FreightResponse, len(freights))
	for i, f := range freights {
		items[i] = ToFreightResponse(f)
	}
	return FreightListResponse{
		Freights: items,
	}
}

// ToBalanceResponse converts a FreightBalance to a BalanceResponse DTO.
func ToBalanceResponse(b *entity.FreightBalance) BalanceResponse {
	return BalanceResponse{
		FreightID:    b.FreightID.String(),
		IncomeTotal:  money(b.IncomeTotal),
		ExpenseTotal: money(b.ExpenseTotal),
		Balance:      money(b.Balance),
		FreightValue: money(b.FreightValue),
	}
}

// ToSettleResponse converts the settle use case output to a SettleResponse DTO.
func ToSettleResponse(output *settlement.SettleFreightOutput) SettleResponse {
	response := SettleResponse{
		Freight:        ToFreightResponse(output.Freight),
		AdvanceTotal:   money(output.AdvanceTotal),
		FinalAmount:    money(output.FinalAmount),
		AlreadySettled: output.AlreadySettled,
	}
	if output.Income != nil {
		income := ToIncomeResponse(output.Income)
		response.Income = &income
	}
	return response
}

// ToReactivateResponse converts the reactivate use case output to a ReactivateResponse DTO.
func ToReactivateResponse(output *settlement.ReactivateFreightOutput) ReactivateResponse {
	return ReactivateResponse{
		Freight:        ToFreightResponse(output.Freight),
		RemovedIncomes: output.RemovedIncomes,
	}
}
