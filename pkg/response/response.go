package response

import (
	"net/http"

	"github.com/andriekus/product-options-service/pkg/errs"
	"github.com/labstack/echo/v4"
)

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type ErrorResponse struct {
	Success bool        `json:"success"`
	Message interface{} `json:"message"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ItemsData wraps collection payloads as {"items": [...]}.
type ItemsData struct {
	Items interface{} `json:"items"`
}

func WriteSuccessResponse(c echo.Context, statusCode int, data interface{}) error {
	resp := SuccessResponse{}
	resp.Success = true
	resp.Data = data

	return c.JSON(statusCode, resp)
}

func WriteErrorResponse(c echo.Context, err error) error {
	statusCode := errs.GetErrorStatusCode(err)
	resp := ErrorResponse{}
	resp.Message = err.Error()

	return c.JSON(statusCode, resp)
}

// WriteValidationErrorResponse returns every collected field failure at once.
func WriteValidationErrorResponse(c echo.Context, fieldErrors []ValidationError) error {
	resp := ErrorResponse{}
	resp.Message = fieldErrors

	return c.JSON(http.StatusBadRequest, resp)
}
