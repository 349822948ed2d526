package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/application/usecase/cashflow"
	"github.com/freight-manager/backend/internal/integration/entrypoint/dto"
	"github.com/freight-manager/backend/internal/integration/entrypoint/middleware"
)

// CashFlowController handles the combined income and expense ledger.
type CashFlowController struct {
	listUseCase *cashflow.ListCashFlowUseCase
}

// NewCashFlowController creates a new cash-flow controller instance.
func NewCashFlowController(listUseCase *cashflow.ListCashFlowUseCase) *CashFlowController {
	return &CashFlowController{
		listUseCase: listUseCase,
	}
}

// List handles GET /cash-flow requests. vehicleId is a vehicle UUID or "general" (no filter).
func (c *CashFlowController) List(ctx *gin.Context) {
	var input cashflow.ListCashFlowInput
	if value := ctx.Query("vehicleId"); value != "" && value != generalFilter {
		id, err := uuid.Parse(value)
		if err != nil {
			badRequest(ctx, "Invalid vehicleId filter", err)
			return
		}
		input.VehicleID = &id
	}

	c.list(ctx, input)
}

// ListMine handles GET /me/cash-flow requests for driver accounts.
func (c *CashFlowController) ListMine(ctx *gin.Context) {
	driverID, ok := middleware.GetDriverIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Account is not linked to a driver"})
		return
	}
	c.list(ctx, cashflow.ListCashFlowInput{DriverID: &driverID})
}

func (c *CashFlowController) list(ctx *gin.Context, input cashflow.ListCashFlowInput) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCashFlowResponse(output.CashFlow))
}
