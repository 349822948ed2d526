package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/application/usecase/expense"
	"github.com/freight-manager/backend/internal/integration/entrypoint/dto"
	"github.com/freight-manager/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	listUseCase    *expense.ListExpensesUseCase
	createUseCase  *expense.CreateExpenseUseCase
	updateUseCase  *expense.UpdateExpenseUseCase
	deleteUseCase  *expense.DeleteExpenseUseCase
	suggestUseCase *expense.SuggestCategoryUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *expense.ListExpensesUseCase,
	createUseCase *expense.CreateExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	suggestUseCase *expense.SuggestCategoryUseCase,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		suggestUseCase: suggestUseCase,
	}
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	var filter adapter.ExpenseFilter
	for param, target := range map[string]**uuid.UUID{
		"freightId": &filter.FreightID,
		"vehicleId": &filter.VehicleID,
		"driverId":  &filter.DriverID,
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

	c.list(ctx, filter)
}

func (c *ExpenseController) list(ctx *gin.Context, filter adapter.ExpenseFilter) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), expense.ListExpensesInput{Filter: filter})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExpenseListResponse{Expenses: dto.ToExpenseResponses(output.Expenses)})
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	c.create(ctx, nil)
}

func (c *ExpenseController) create(ctx *gin.Context, actingDriverID *uuid.UUID) {
	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	fields, err := req.ToFields()
	if err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), expense.CreateExpenseInput{
		ExpenseFields:  fields,
		ActingDriverID: actingDriverID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// Update handles PUT /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	expenseID, ok := parseIDParam(ctx, "id", "expense")
	if !ok {
		return
	}

	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	fields, err := req.ToFields()
	if err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), expense.UpdateExpenseInput{
		ExpenseID:     expenseID,
		ExpenseFields: fields,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	expenseID, ok := parseIDParam(ctx, "id", "expense")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{ExpenseID: expenseID}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SuggestCategory handles POST /expenses/suggest-category requests.
func (c *ExpenseController) SuggestCategory(ctx *gin.Context) {
	var req dto.SuggestCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), expense.SuggestCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuggestCategoryResponse{
		Category: output.Category,
		FromAI:   output.FromAI,
	})
}

// ListMine handles GET /me/expenses requests for driver accounts.
func (c *ExpenseController) ListMine(ctx *gin.Context) {
	driverID, ok := middleware.GetDriverIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Account is not linked to a driver"})
		return
	}
	c.list(ctx, adapter.ExpenseFilter{DriverID: &driverID})
}

// CreateMine handles POST /me/expenses requests for driver accounts.
// The expense is always recorded against the caller's driver.
func (c *ExpenseController) CreateMine(ctx *gin.Context) {
	driverID, ok := middleware.GetDriverIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Account is not linked to a driver"})
		return
	}
	c.create(ctx, &driverID)
}
