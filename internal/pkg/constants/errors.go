package constants

import (
	"errors"
	"net/http"
)

// CodedError is an error that carries the HTTP status it should be
// reported with. The api error handler unwraps down to the first one.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound = NewCodedError(http.StatusNotFound, "not found")

	ErrInvalidDateRange = NewCodedError(http.StatusBadRequest, "La fecha inicial no puede ser mayor que la final.")
	ErrInvalidProjectID = NewCodedError(http.StatusBadRequest, "El ID de proyecto debe ser mayor que cero.")
	ErrInvalidRegionID  = NewCodedError(http.StatusBadRequest, "El ID de región debe ser mayor que cero.")
	ErrInvalidLimit     = NewCodedError(http.StatusBadRequest, "El límite debe ser mayor que cero.")

	// ErrNilQuery signals a caller bug, not a client error.
	ErrNilQuery = errors.New("query is nil")
)
