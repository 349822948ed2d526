package error

import "errors"

// Ledger (incomes and expenses) domain errors.
var (
	// ErrIncomeNotFound is returned when an income is not found.
	ErrIncomeNotFound = errors.New("income not found")

	// ErrExpenseNotFound is returned when an expense is not found.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidAmount is returned when an amount is negative.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrMissingEntryName is returned when an income or expense has no name.
	ErrMissingEntryName = errors.New("name is required")

	// ErrMissingEntryCategory is returned when an income or expense has no category.
	ErrMissingEntryCategory = errors.New("category is required")

	// ErrInvalidInstallments is returned when a credit expense has less than one installment.
	ErrInvalidInstallments = errors.New("invalid installments")

	// ErrSettlementIncomeLocked is returned when a settlement income is edited outside the settlement workflow.
	ErrSettlementIncomeLocked = errors.New("settlement income is managed by the settlement workflow")

	// ErrMissingFreightID is returned when a per-freight query has no freight id.
	ErrMissingFreightID = errors.New("freight id is required")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LDG-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Lookup errors (01XXXX)
	ErrCodeIncomeNotFound        LedgerErrorCode = "LDG-010001"
	ErrCodeExpenseNotFound       LedgerErrorCode = "LDG-010002"
	ErrCodeLedgerFreightNotFound LedgerErrorCode = "LDG-010003"

	// Validation errors (02XXXX)
	ErrCodeInvalidAmount        LedgerErrorCode = "LDG-020001"
	ErrCodeMissingEntryName     LedgerErrorCode = "LDG-020002"
	ErrCodeMissingEntryCategory LedgerErrorCode = "LDG-020003"
	ErrCodeInvalidInstallments  LedgerErrorCode = "LDG-020004"
	ErrCodeMissingFreightID     LedgerErrorCode = "LDG-020005"
	ErrCodeMissingLedgerFields  LedgerErrorCode = "LDG-020006"

	// Conflict errors (03XXXX)
	ErrCodeSettlementIncomeLocked LedgerErrorCode = "LDG-030001"
)

// LedgerError is returned by the ledger use cases.
type LedgerError = CodedError[LedgerErrorCode]

func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return newCoded(code, message, err)
}
