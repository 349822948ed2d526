package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/application/usecase/expense"
	"github.com/freight-manager/backend/internal/application/usecase/income"
	domainerror "github.com/freight-manager/backend/internal/domain/error"
	"github.com/freight-manager/backend/internal/integration/entrypoint/dto"
)

// LegacyLedgerController serves the per-freight income and expense queries consumed by the UI.
type LegacyLedgerController struct {
	listIncomesUseCase  *income.ListIncomesUseCase
	listExpensesUseCase *expense.ListExpensesUseCase
}

// NewLegacyLedgerController creates a new legacy ledger controller instance.
func NewLegacyLedgerController(
	listIncomesUseCase *income.ListIncomesUseCase,
	listExpensesUseCase *expense.ListExpensesUseCase,
) *LegacyLedgerController {
	return &LegacyLedgerController{
		listIncomesUseCase:  listIncomesUseCase,
		listExpensesUseCase: listExpensesUseCase,
	}
}

// Incomes handles GET /api/entradas?freteId=<id> requests.
func (c *LegacyLedgerController) Incomes(ctx *gin.Context) {
	freightID, ok := parseFreteID(ctx)
	if !ok {
		return
	}

	output, err := c.listIncomesUseCase.Execute(ctx.Request.Context(), income.ListIncomesInput{
		Filter: adapter.IncomeFilter{FreightID: &freightID},
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.IncomeDataResponse{Data: dto.ToIncomeResponses(output.Incomes)})
}

// Expenses handles GET /api/despesas?freteId=<id> requests.
func (c *LegacyLedgerController) Expenses(ctx *gin.Context) {
	freightID, ok := parseFreteID(ctx)
	if !ok {
		return
	}

	output, err := c.listExpensesUseCase.Execute(ctx.Request.Context(), expense.ListExpensesInput{
		Filter: adapter.ExpenseFilter{FreightID: &freightID},
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExpenseDataResponse{Data: dto.ToExpenseResponses(output.Expenses)})
}

// parseFreteID reads the required freteId query parameter and responds 400 when it is missing or malformed.
func parseFreteID(ctx *gin.Context) (uuid.UUID, bool) {
	value := ctx.Query("freteId")
	if value == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "freteId is required",
			Code:  string(domainerror.ErrCodeMissingFreightID),
		})
		return uuid.Nil, false
	}

	id, err := uuid.Parse(value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "freteId must be a valid ID",
			Code:  string(domainerror.ErrCodeMissingFreightID),
		})
		return uuid.Nil, false
	}
	return id, true
}
