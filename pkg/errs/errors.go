package errs

import (
	"errors"
	"net/http"
)

var (
	ErrInternalServer        = errors.New("Internal server error")
	ErrClient                = errors.New("Bad request")
	ErrUnauthorized          = errors.New("Unauthorised access")
	ErrRouteNotFound         = errors.New("Route not found")
	ErrNotFound              = errors.New("Resource not found")
	ErrProductNotFound       = errors.New("Product was not found")
	ErrUpdateProductNotFound = errors.New("The product you are trying to update was not found")
	ErrDeleteProductNotFound = errors.New("The product you are trying to delete was not found")
	ErrProductOptionNotFound = errors.New("Product option was not found")
	ErrOptionMismatch        = errors.New("Product option does not belong to this product")
	ErrInvalidID             = errors.New("Invalid id parameter")
	ErrInvalidOptionID       = errors.New("Invalid option id parameter")
	ErrInvalidLimit          = errors.New("Limit query parameter must be greater 0")
	ErrInvalidPage           = errors.New("Page query parameter must be greater 0")
)

var errorMap = map[error]int{
	ErrInternalServer:        http.StatusInternalServerError,
	ErrClient:                http.StatusBadRequest,
	ErrUnauthorized:          http.StatusUnauthorized,
	ErrRouteNotFound:         http.StatusBadRequest,
	ErrNotFound:              http.StatusNotFound,
	ErrProductNotFound:       http.StatusNotFound,
	ErrUpdateProductNotFound: http.StatusNotFound,
	ErrDeleteProductNotFound: http.StatusNotFound,
	ErrProductOptionNotFound: http.StatusNotFound,
	ErrOptionMismatch:        http.StatusNotFound,
	ErrInvalidID:             http.StatusBadRequest,
	ErrInvalidOptionID:       http.StatusBadRequest,
	ErrInvalidLimit:          http.StatusBadRequest,
	ErrInvalidPage:           http.StatusBadRequest,
}

// GetErrorStatusCode maps a known error to its HTTP status. Anything not in
// the map is a persistence or programming failure and surfaces as a 500.
func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = http.StatusInternalServerError
	}
	return errStatusCode
}
