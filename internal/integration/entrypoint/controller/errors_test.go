package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainerror "github.com/freight-manager/backend/internal/domain/error"
	"github.com/freight-manager/backend/internal/integration/entrypoint/dto"
)

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "freight not found",
			err:            domainerror.NewFreightError(domainerror.ErrCodeFreightNotFound, "Freight not found", domainerror.ErrFreightNotFound),
			expectedStatus: http.StatusNotFound,
			expectedCode:   "FRT-010001",
		},
		{
			name:           "unknown freight reference",
			err:            domainerror.NewFreightError(domainerror.ErrCodeFreightReferenceNotFound, "Vehicle not found", nil),
			expectedStatus: http.StatusNotFound,
			expectedCode:   "FRT-010002",
		},
		{
			name:           "foreign freight for a driver",
			err:            domainerror.NewFreightError(domainerror.ErrCodeFreightAccessDenied, "Freight belongs to another driver", nil),
			expectedStatus: http.StatusForbidden,
			expectedCode:   "FRT-010003",
		},
		{
			name:           "invalid weights",
			err:            domainerror.NewFreightError(domainerror.ErrCodeInvalidWeights, "Weights must be positive", nil),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "FRT-020003",
		},
		{
			name:           "missing freight id on legacy listing",
			err:            domainerror.NewLedgerError(domainerror.ErrCodeMissingFreightID, "freteId is required", nil),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "LDG-020005",
		},
		{
			name:           "unknown ledger freight",
			err:            domainerror.NewLedgerError(domainerror.ErrCodeLedgerFreightNotFound, "Freight not found", nil),
			expectedStatus: http.StatusNotFound,
			expectedCode:   "LDG-010003",
		},
		{
			name:           "settlement income edit",
			err:            domainerror.NewLedgerError(domainerror.ErrCodeSettlementIncomeLocked, "Settlement incomes are managed by the freight", nil),
			expectedStatus: http.StatusConflict,
			expectedCode:   "LDG-030001",
		},
		{
			name:           "duplicate plate",
			err:            domainerror.NewFleetError(domainerror.ErrCodePlateExists, "Plate already registered", nil),
			expectedStatus: http.StatusConflict,
			expectedCode:   "FLT-030001",
		},
		{
			name:           "invalid category kind",
			err:            domainerror.NewCategoryError(domainerror.ErrCodeInvalidCategoryKind, "Invalid kind", nil),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "CAT-010004",
		},
		{
			name:           "forbidden role",
			err:            domainerror.NewAuthError(domainerror.ErrCodeForbidden, "Insufficient permissions", nil),
			expectedStatus: http.StatusForbidden,
			expectedCode:   "AUTH-040001",
		},
		{
			name:           "wrapped domain error",
			err:            fmt.Errorf("settle: %w", domainerror.NewFreightError(domainerror.ErrCodeFreightNotFound, "Freight not found", nil)),
			expectedStatus: http.StatusNotFound,
			expectedCode:   "FRT-010001",
		},
		{
			name:           "store error",
			err:            domainerror.NewStoreError("list freights", errors.New("connection refused")),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			handleError(ctx, tt.err)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var response dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if response.Code != tt.expectedCode {
				t.Errorf("expected code %q, got %q", tt.expectedCode, response.Code)
			}
			if response.Error == "" {
				t.Error("expected an error message")
			}
		})
	}
}

func TestParseIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("malformed id", func(t *testing.T) {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		ctx.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

		if _, ok := parseIDParam(ctx, "id", "freight"); ok {
			t.Fatal("expected parse to fail")
		}
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", w.Code)
		}
	})

	t.Run("valid id", func(t *testing.T) {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		ctx.Params = gin.Params{{Key: "id", Value: "3f2b8c1e-6d8a-4a4c-9a7e-2f1c0b9d8e7a"}}

		id, ok := parseIDParam(ctx, "id", "freight")
		if !ok {
			t.Fatal("expected parse to succeed")
		}
		if id.String() != "3f2b8c1e-6d8a-4a4c-9a7e-2f1c0b9d8e7a" {
			t.Errorf("unexpected id %s", id)
		}
	})
}
