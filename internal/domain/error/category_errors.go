package error

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryNameExists is scoped to the category kind.
	ErrCategoryNameExists  = errors.New("category name already exists")
	ErrCategoryNameTooLong = errors.New("category name too long")
	ErrInvalidCategoryKind = errors.New("invalid category kind")
)

// CategoryErrorCode values are all in group 01.
type CategoryErrorCode string

const (
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNameExists    CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNameTooLong   CategoryErrorCode = "CAT-010003"
	ErrCodeInvalidCategoryKind   CategoryErrorCode = "CAT-010004"
	ErrCodeMissingCategoryFields CategoryErrorCode = "CAT-010005"
)

// CategoryError is returned by the category use cases.
type CategoryError = CodedError[CategoryErrorCode]

func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return newCoded(code, message, err)
}
