package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freight-manager/backend/internal/application/usecase/settlement"
	"github.com/freight-manager/backend/internal/integration/entrypoint/dto"
)

// SettlementController handles the settle and reactivate commands of a freight.
type SettlementController struct {
	settleUseCase     *settlement.SettleFreightUseCase
	reactivateUseCase *settlement.ReactivateFreightUseCase
}

// NewSettlementController creates a new settlement controller instance.
func NewSettlementController(
	settleUseCase *settlement.SettleFreightUseCase,
	reactivateUseCase *settlement.ReactivateFreightUseCase,
) *SettlementController {
	return &SettlementController{
		settleUseCase:     settleUseCase,
		reactivateUseCase: reactivateUseCase,
	}
}

// Settle handles POST /freights/:id/settle requests.
func (c *SettlementController) Settle(ctx *gin.Context) {
	freightID, ok := parseIDParam(ctx, "id", "freight")
	if !ok {
		return
	}

	output, err := c.settleUseCase.Execute(ctx.Request.Context(), settlement.SettleFreightInput{FreightID: freightID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettleResponse(output))
}

// Reactivate handles POST /freights/:id/reactivate requests.
func (c *SettlementController) Reactivate(ctx *gin.Context) {
	freightID, ok := parseIDParam(ctx, "id", "freight")
	if !ok {
		return
	}

	output, err := c.reactivateUseCase.Execute(ctx.Request.Context(), settlement.ReactivateFreightInput{FreightID: freightID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReactivateResponse(output))
}
