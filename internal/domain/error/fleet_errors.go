package error

import "errors"

// Fleet (vehicles, drivers, brokers) domain errors.
var (
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrDriverNotFound     = errors.New("driver not found")
	ErrBrokerNotFound     = errors.New("broker not found")
	ErrPlateAlreadyExists = errors.New("plate already registered")
	ErrMissingFleetFields = errors.New("required fields are missing")
	ErrInvalidBrokerEmail = errors.New("invalid broker email")
)

// FleetErrorCode defines error codes for fleet errors.
// Format: FLT-XXYYYY where XX is category and YYYY is specific error.
type FleetErrorCode string

const (
	ErrCodeVehicleNotFound    FleetErrorCode = "FLT-010001"
	ErrCodeDriverNotFound     FleetErrorCode = "FLT-010002"
	ErrCodeBrokerNotFound     FleetErrorCode = "FLT-010003"
	ErrCodeMissingFleetFields FleetErrorCode = "FLT-020001"
	ErrCodeInvalidBrokerEmail FleetErrorCode = "FLT-020002"
	ErrCodePlateExists        FleetErrorCode = "FLT-030001"
)

// FleetError is returned by the fleet use cases.
type FleetError = CodedError[FleetErrorCode]

func NewFleetError(code FleetErrorCode, message string, err error) *FleetError {
	return newCoded(code, message, err)
}
