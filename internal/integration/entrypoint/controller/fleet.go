package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freight-manager/backend/internal/application/usecase/fleet"
	"github.com/freight-manager/backend/internal/integration/entrypoint/dto"
)

// VehicleController handles vehicle endpoints.
type VehicleController struct {
	listUseCase   *fleet.ListVehiclesUseCase
	createUseCase *fleet.CreateVehicleUseCase
	updateUseCase *fleet.UpdateVehicleUseCase
	deleteUseCase *fleet.DeleteVehicleUseCase
}

// NewVehicleController creates a new vehicle controller instance.
func NewVehicleController(
	listUseCase *fleet.ListVehiclesUseCase,
	createUseCase *fleet.CreateVehicleUseCase,
	updateUseCase *fleet.UpdateVehicleUseCase,
	deleteUseCase *fleet.DeleteVehicleUseCase,
) *VehicleController {
	return &VehicleController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /vehicles requests.
func (c *VehicleController) List(ctx *gin.Context) {
	items, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVehicleListResponse(items))
}

// Create handles POST /vehicles requests.
func (c *VehicleController) Create(ctx *gin.Context) {
	var req dto.VehicleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	item, err := c.createUseCase.Execute(ctx.Request.Context(), fleet.VehicleInput{Plate: req.Plate, Model: req.Model, Year: req.Year})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToVehicleResponse(item))
}

// Update handles PUT /vehicles/:id requests.
func (c *VehicleController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "vehicle")
	if !ok {
		return
	}

	var req dto.VehicleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	item, err := c.updateUseCase.Execute(ctx.Request.Context(), id, fleet.VehicleInput{Plate: req.Plate, Model: req.Model, Year: req.Year})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVehicleResponse(item))
}

// Delete handles DELETE /vehicles/:id requests.
func (c *VehicleController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "vehicle")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DriverController handles driver endpoints.
type DriverController struct {
	listUseCase   *fleet.ListDriversUseCase
	createUseCase *fleet.CreateDriverUseCase
	updateUseCase *fleet.UpdateDriverUseCase
	deleteUseCase *fleet.DeleteDriverUseCase
}

// NewDriverController creates a new driver controller instance.
func NewDriverController(
	listUseCase *fleet.ListDriversUseCase,
	createUseCase *fleet.CreateDriverUseCase,
	updateUseCase *fleet.UpdateDriverUseCase,
	deleteUseCase *fleet.DeleteDriverUseCase,
) *DriverController {
	return &DriverController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /drivers requests.
func (c *DriverController) List(ctx *gin.Context) {
	items, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDriverListResponse(items))
}

// Create handles POST /drivers requests.
func (c *DriverController) Create(ctx *gin.Context) {
	var req dto.DriverRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	item, err := c.createUseCase.Execute(ctx.Request.Context(), fleet.DriverInput{Name: req.Name, Document: req.Document, Phone: req.Phone})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDriverResponse(item))
}

// Update handles PUT /drivers/:id requests.
func (c *DriverController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "driver")
	if !ok {
		return
	}

	var req dto.DriverRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	item, err := c.updateUseCase.Execute(ctx.Request.Context(), id, fleet.DriverInput{Name: req.Name, Document: req.Document, Phone: req.Phone})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDriverResponse(item))
}

// Delete handles DELETE /drivers/:id requests.
func (c *DriverController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "driver")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// BrokerController handles broker endpoints.
type BrokerController struct {
	listUseCase   *fleet.ListBrokersUseCase
	createUseCase *fleet.CreateBrokerUseCase
	updateUseCase *fleet.UpdateBrokerUseCase
	deleteUseCase *fleet.DeleteBrokerUseCase
}

// NewBrokerController creates a new broker controller instance.
func NewBrokerController(
	listUseCase *fleet.ListBrokersUseCase,
	createUseCase *fleet.CreateBrokerUseCase,
	updateUseCase *fleet.UpdateBrokerUseCase,
	deleteUseCase *fleet.DeleteBrokerUseCase,
) *BrokerController {
	return &BrokerController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /brokers requests.
func (c *BrokerController) List(ctx *gin.Context) {
	items, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBrokerListResponse(items))
}

// Create handles POST /brokers requests.
func (c *BrokerController) Create(ctx *gin.Context) {
	var req dto.BrokerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	item, err := c.createUseCase.Execute(ctx.Request.Context(), fleet.BrokerInput{Name: req.Name, Email: req.Email, Phone: req.Phone})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBrokerResponse(item))
}

// Update handles PUT /brokers/:id requests.
func (c *BrokerController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "broker")
	if !ok {
		return
	}

	var req dto.BrokerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	item, err := c.updateUseCase.Execute(ctx.Request.Context(), id, fleet.BrokerInput{Name: req.Name, Email: req.Email, Phone: req.Phone})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBrokerResponse(item))
}

// Delete handles DELETE /brokers/:id requests.
func (c *BrokerController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "broker")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
