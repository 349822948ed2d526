// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/freight-manager/backend/internal/domain/error"
	"github.com/freight-manager/backend/internal/integration/entrypoint/dto"
	"github.com/freight-manager/backend/internal/integration/entrypoint/middleware"
)

// handleError maps domain errors to HTTP responses. Unknown errors are logged and returned as 500.
func handleError(ctx *gin.Context, err error) {
	var (
		freightErr  *domainerror.FreightError
		ledgerErr   *domainerror.LedgerError
		fleetErr    *domainerror.FleetError
		categoryErr *domainerror.CategoryError
		authErr     *domainerror.AuthError
	)

	switch {
	case errors.As(err, &freightErr):
		writeError(ctx, getStatusCodeForFreightError(freightErr.Code), freightErr.Message, string(freightErr.Code))
	case errors.As(err, &ledgerErr):
		writeError(ctx, getStatusCodeForLedgerError(ledgerErr.Code), ledgerErr.Message, string(ledgerErr.Code))
	case errors.As(err, &fleetErr):
		writeError(ctx, getStatusCodeForFleetError(fleetErr.Code), fleetErr.Message, string(fleetErr.Code))
	case errors.As(err, &categoryErr):
		writeError(ctx, getStatusCodeForCategoryError(categoryErr.Code), categoryErr.Message, string(categoryErr.Code))
	case errors.As(err, &authErr):
		writeError(ctx, getStatusCodeForAuthError(authErr.Code), authErr.Message, string(authErr.Code))
	default:
		slog.Error("Request failed",
			"request_id", middleware.GetRequestIDFromContext(ctx),
			"path", ctx.FullPath(),
			"store_error", errors.Is(err, domainerror.ErrStore),
			"error", err,
		)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

func writeError(ctx *gin.Context, status int, message, code string) {
	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// badRequest responds 400 for malformed input that never reached a use case.
func badRequest(ctx *gin.Context, message string, err error) {
	response := dto.ErrorResponse{
		Error: message,
	}
	if err != nil {
		response.Details = err.Error()
	}
	ctx.JSON(http.StatusBadRequest, response)
}

// getStatusCodeForFreightError maps freight error codes to HTTP status codes.
func getStatusCodeForFreightError(code domainerror.FreightErrorCode) int {
	switch code {
	case domainerror.ErrCodeFreightNotFound,
		domainerror.ErrCodeFreightReferenceNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeFreightAccessDenied:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidFreightName,
		domainerror.ErrCodeInvalidFreightRoute,
		domainerror.ErrCodeInvalidWeights,
		domainerror.ErrCodeInvalidPricePerTon,
		domainerror.ErrCodeInvalidDistance,
		domainerror.ErrCodeMissingFreightFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForLedgerError maps income and expense error codes to HTTP status codes.
func getStatusCodeForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeIncomeNotFound,
		domainerror.ErrCodeExpenseNotFound,
		domainerror.ErrCodeLedgerFreightNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeMissingEntryName,
		domainerror.ErrCodeMissingEntryCategory,
		domainerror.ErrCodeInvalidInstallments,
		domainerror.ErrCodeMissingFreightID,
		domainerror.ErrCodeMissingLedgerFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeSettlementIncomeLocked:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForFleetError maps fleet error codes to HTTP status codes.
func getStatusCodeForFleetError(code domainerror.FleetErrorCode) int {
	switch code {
	case domainerror.ErrCodeVehicleNotFound,
		domainerror.ErrCodeDriverNotFound,
		domainerror.ErrCodeBrokerNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingFleetFields,
		domainerror.ErrCodeInvalidBrokerEmail:
		return http.StatusBadRequest
	case domainerror.ErrCodePlateExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForCategoryError maps category error codes to HTTP status codes.
func getStatusCodeForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryNameExists:
		return http.StatusConflict
	case domainerror.ErrCodeCategoryNameTooLong,
		domainerror.ErrCodeInvalidCategoryKind,
		domainerror.ErrCodeMissingCategoryFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForAuthError maps auth error codes to HTTP status codes.
func getStatusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidRole,
		domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeMissingFields,
		domainerror.ErrCodeDriverLinkRequired:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeUserNotFound,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeForbidden:
		return http.StatusForbidden
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// parseIDParam parses a UUID path parameter and responds 400 when it is malformed.
func parseIDParam(ctx *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		badRequest(ctx, "Invalid "+label+" ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}
