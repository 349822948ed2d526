package error

import "errors"

// Freight domain errors.
var (
	// ErrFreightNotFound is returned when a freight is not found in the system.
	ErrFreightNotFound = errors.New("freight not found")

	// ErrInvalidFreightName is returned when the freight name is empty.
	ErrInvalidFreightName = errors.New("invalid freight name")

	// ErrInvalidFreightRoute is returned when origin or destination is empty.
	ErrInvalidFreightRoute = errors.New("invalid freight route")

	// ErrInvalidWeights is returned when the weight list is empty or has a negative item.
	ErrInvalidWeights = errors.New("invalid weights")

	// ErrInvalidPricePerTon is returned when the price per ton is negative.
	ErrInvalidPricePerTon = errors.New("invalid price per ton")

	// ErrInvalidDistance is returned when the distance is negative.
	ErrInvalidDistance = errors.New("invalid distance")

	// ErrFreightReferenceNotFound is returned when the vehicle, driver or broker of a freight does not exist.
	ErrFreightReferenceNotFound = errors.New("referenced vehicle, driver or broker not found")

	// ErrFreightAccessDenied is returned when a driver reads a freight assigned to someone else.
	ErrFreightAccessDenied = errors.New("freight is not assigned to this driver")
)

// FreightErrorCode defines error codes for freight errors.
// Format: FRT-XXYYYY where XX is category and YYYY is specific error.
type FreightErrorCode string

const (
	// Lookup errors (01XXXX)
	ErrCodeFreightNotFound          FreightErrorCode = "FRT-010001"
	ErrCodeFreightReferenceNotFound FreightErrorCode = "FRT-010002"
	ErrCodeFreightAccessDenied      FreightErrorCode = "FRT-010003"

	// Validation errors (02XXXX)
	ErrCodeInvalidFreightName   FreightErrorCode = "FRT-020001"
	ErrCodeInvalidFreightRoute  FreightErrorCode = "FRT-020002"
	ErrCodeInvalidWeights       FreightErrorCode = "FRT-020003"
	ErrCodeInvalidPricePerTon   FreightErrorCode = "FRT-020004"
	ErrCodeInvalidDistance      FreightErrorCode = "FRT-020005"
	ErrCodeMissingFreightFields FreightErrorCode = "FRT-020006"
)

// FreightError is returned by the freight use cases.
type FreightError = CodedError[FreightErrorCode]

func NewFreightError(code FreightErrorCode, message string, err error) *FreightError {
	return newCoded(code, message, err)
}
