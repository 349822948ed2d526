// Package error defines domain-specific errors for the Freight Manager application.
// Codes follow PREFIX-XXYYYY, XX being the group and YYYY the error within it.
package error

// CodedError carries a stable API code, a user facing message and the wrapped cause.
type CodedError[C ~string] struct {
	Code    C
	Message string
	Err     error
}

func (e *CodedError[C]) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *CodedError[C]) Unwrap() error {
	return e.Err
}

func newCoded[C ~string](code C, message string, err error) *CodedError[C] {
	return &CodedError[C]{Code: code, Message: message, Err: err}
}
