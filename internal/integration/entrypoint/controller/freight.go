// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/application/usecase/freight"
	"github.com/freight-manager/backend/internal/integration/entrypoint/dto"
	"github.com/freight-manager/backend/internal/integration/entrypoint/middleware"
)

// FreightController handles freight endpoints.
type FreightController struct {
	listUseCase    *freight.ListFreightsUseCase
	createUseCase  *freight.CreateFreightUseCase
	getUseCase     *freight.GetFreightUseCase
	updateUseCase  *freight.UpdateFreightUseCase
	deleteUseCase  *freight.DeleteFreightUseCase
	balanceUseCase *freight.GetBalanceUseCase
}

// NewFreightController creates a new freight controller instance.
func NewFreightController(
	listUseCase *freight.ListFreightsUseCase,
	createUseCase *freight.CreateFreightUseCase,
	getUseCase *freight.GetFreightUseCase,
	updateUseCase *freight.UpdateFreightUseCase,
	deleteUseCase *freight.DeleteFreightUseCase,
	balanceUseCase *freight.GetBalanceUseCase,
) *FreightController {
	return &FreightController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		getUseCase:     getUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		balanceUseCase: balanceUseCase,
	}
}

// List handles GET /freights requests.
func (c *FreightController) List(ctx *gin.Context) {
	var filter adapter.FreightFilter

	if settledStr := ctx.Query("settled"); settledStr != "" {
		settled, err := strconv.ParseBool(settledStr)
		if err != nil {
			badRequest(ctx, "Invalid settled filter", err)
			return
		}
		filter.Settled = &settled
	}

	for param, target := range map[string]**uuid.UUID{
		"vehicleId": &filter.VehicleID,
		"driverId":  &filter.DriverID,
		"brokerId":  &filter.BrokerID,
	} {
		value := ctx.Query(param)
		if value == "" {
			continue
		}
		id, err := uuid.Parse(value)
		if err != nil {
			badRequest(ctx, "Invalid "+param+" filter", err)
			return
		}
		*target = &id
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), freight.ListFreightsInput{Filter: filter})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFreightListResponse(output.Freights))
}

// Create handles POST /freights requests.
func (c *FreightController) Create(ctx *gin.Context) {
	var req dto.FreightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	fields, err := req.ToFields()
	if err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), freight.CreateFreightInput{FreightFields: fields})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFreightResponse(output.Freight))
}

// Get handles GET /freights/:id requests.
func (c *FreightController) Get(ctx *gin.Context) {
	freightID, ok := parseIDParam(ctx, "id", "freight")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), freight.GetFreightInput{FreightID: freightID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFreightResponse(output.Freight))
}

// Update handles PUT /freights/:id requests.
func (c *FreightController) Update(ctx *gin.Context) {
	freightID, ok := parseIDParam(ctx, "id", "freight")
	if !ok {
		return
	}

	var req dto.FreightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	fields, err := req.ToFields()
	if err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), freight.UpdateFreightInput{
		FreightID:     freightID,
		FreightFields: fields,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFreightResponse(output.Freight))
}

// Delete handles DELETE /freights/:id requests.
func (c *FreightController) Delete(ctx *gin.Context) {
	freightID, ok := parseIDParam(ctx, "id", "freight")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), freight.DeleteFreightInput{FreightID: freightID}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Balance handles GET /freights/:id/balance requests.
func (c *FreightController) Balance(ctx *gin.Context) {
	freightID, ok := parseIDParam(ctx, "id", "freight")
	if !ok {
		return
	}

	output, err := c.balanceUseCase.Execute(ctx.Request.Context(), freight.GetBalanceInput{FreightID: freightID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalanceResponse(output.Balance))
}

// ListMine handles GET /me/freights requests for driver accounts.
func (c *FreightController) ListMine(ctx *gin.Context) {
	driverID, ok := middleware.GetDriverIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Account is not linked to a driver"})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), freight.ListFreightsInput{
		Filter: adapter.FreightFilter{DriverID: &driverID},
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFreightListResponse(output.Freights))
}

// GetMine handles GET /me/freights/:id requests for driver accounts.
func (c *FreightController) GetMine(ctx *gin.Context) {
	driverID, ok := middleware.GetDriverIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Account is not linked to a driver"})
		return
	}

	freightID, ok := parseIDParam(ctx, "id", "freight")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), freight.GetFreightInput{
		FreightID: freightID,
		DriverID:  &driverID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFreightResponse(output.Freight))
}
