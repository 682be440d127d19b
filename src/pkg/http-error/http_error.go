package httperror

import "net/http"

// CommonError carries the HTTP status a usecase failure should surface with.
type CommonError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *CommonError) Error() string {
	return e.Message
}

func (e *CommonError) Unwrap() error {
	return e.Err
}

func newError(code int) *CommonError {
	return &CommonError{
		Code:    code,
		Message: http.StatusText(code),
	}
}

func NewBadRequest() *CommonError {
	return newError(http.StatusBadRequest)
}

func NewNotFound() *CommonError {
	return newError(http.StatusNotFound)
}

func NewConflict() *CommonError {
	return newError(http.StatusConflict)
}

func NewUnprocessableEntity() *CommonError {
	return newError(http.StatusUnprocessableEntity)
}

func NewInternalServerError() *CommonError {
	return newError(http.StatusInternalServerError)
}
