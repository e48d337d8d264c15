package controller

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/andriekus/product-options-service/internal/dto"
	"github.com/andriekus/product-options-service/internal/service"
	"github.com/andriekus/product-options-service/pkg/errs"
	"github.com/andriekus/product-options-service/pkg/response"
	"github.com/andriekus/product-options-service/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	service  service.ProductService
	validate *validator.Validate
}

func CreateProductController(e *echo.Echo, service service.ProductService) {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	c := Controller{
		service:  service,
		validate: validate,
	}

	e.GET("/products", c.GetProducts)
	e.GET("/products/:id", c.GetProductByID)
	e.POST("/products", c.AddProduct)
	e.PUT("/products/:id", c.UpdateProduct)
	e.DELETE("/products/:id", c.DeleteProduct)
	e.GET("/products/:id/options", c.GetProductOptions)
	e.GET("/products/:id/options/:optionId", c.GetProductOption)
	e.POST("/products/:id/options", c.AddProductOption)
	e.PUT("/products/:id/options/:optionId", c.UpdateProductOption)
	e.DELETE("/products/:id/options/:optionId", c.DeleteProductOption)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return response.WriteErrorResponse(c, errs.ErrRouteNotFound)
	})
}

func (c *Controller) GetProducts(e echo.Context) error {
	query := dto.ProductQuery{
		Name:  e.QueryParam("name"),
		Limit: 5,
		Page:  1,
	}

	if raw := e.QueryParam("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || limit < 1 {
			return response.WriteErrorResponse(e, errs.ErrInvalidLimit)
		}
		query.Limit = limit
	}

	if raw := e.QueryParam("page"); raw != "" {
		page, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || page < 1 {
			return response.WriteErrorResponse(e, errs.ErrInvalidPage)
		}
		query.Page = page
	}

	products, err := c.service.GetProducts(e.Request().Context(), query)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, response.ItemsData{Items: products})
}

func (c *Controller) GetProductByID(e echo.Context) error {
	id := e.Param("id")
	if !utils.IsValidUUID(id) {
		return response.WriteErrorResponse(e, errs.ErrInvalidID)
	}

	product, err := c.service.GetProductByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, product)
}

func (c *Controller) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	if fieldErrors := c.validateBody(payload); fieldErrors != nil {
		return response.WriteValidationErrorResponse(e, fieldErrors)
	}

	product, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusCreated, product)
}

func (c *Controller) UpdateProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	if fieldErrors := c.validateBody(payload); fieldErrors != nil {
		return response.WriteValidationErrorResponse(e, fieldErrors)
	}

	id := e.Param("id")
	if !utils.IsValidUUID(id) {
		return response.WriteErrorResponse(e, errs.ErrInvalidID)
	}

	product, err := c.service.UpdateProduct(e.Request().Context(), id, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, product)
}

func (c *Controller) DeleteProduct(e echo.Context) error {
	id := e.Param("id")
	if !utils.IsValidUUID(id) {
		return response.WriteErrorResponse(e, errs.ErrInvalidID)
	}

	if err := c.service.DeleteProduct(e.Request().Context(), id); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.NoContent(http.StatusNoContent)
}

func (c *Controller) GetProductOptions(e echo.Context) error {
	id := e.Param("id")
	if !utils.IsValidUUID(id) {
		return response.WriteErrorResponse(e, errs.ErrInvalidID)
	}

	options, err := c.service.GetProductOptions(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, response.ItemsData{Items: options})
}

func (c *Controller) GetProductOption(e echo.Context) error {
	id, optionID, err := optionParams(e)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	option, err := c.service.GetProductOption(e.Request().Context(), id, optionID)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, option)
}

func (c *Controller) AddProductOption(e echo.Context) error {
	payload := dto.ProductOptionRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "AddProductOption").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	if fieldErrors := c.validateBody(payload); fieldErrors != nil {
		return response.WriteValidationErrorResponse(e, fieldErrors)
	}

	id := e.Param("id")
	if !utils.IsValidUUID(id) {
		return response.WriteErrorResponse(e, errs.ErrInvalidID)
	}

	option, err := c.service.AddProductOption(e.Request().Context(), id, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusCreated, option)
}

func (c *Controller) UpdateProductOption(e echo.Context) error {
	payload := dto.ProductOptionRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Error().Err(err).Str("component", "UpdateProductOption").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	if fieldErrors := c.validateBody(payload); fieldErrors != nil {
		return response.WriteValidationErrorResponse(e, fieldErrors)
	}

	id, optionID, err := optionParams(e)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	option, err := c.service.UpdateProductOption(e.Request().Context(), id, optionID, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, option)
}

func (c *Controller) DeleteProductOption(e echo.Context) error {
	id, optionID, err := optionParams(e)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	if err := c.service.DeleteProductOption(e.Request().Context(), id, optionID); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return e.NoContent(http.StatusNoContent)
}

// validateBody collects every field failure instead of stopping at the first.
func (c *Controller) validateBody(payload interface{}) []response.ValidationError {
	err := c.validate.Struct(payload)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []response.ValidationError{{Field: "body", Message: err.Error()}}
	}

	fieldErrors := make([]response.ValidationError, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		message := fmt.Sprintf("%s parameter is required", fieldError.Field())
		if fieldError.Tag() != "required" {
			message = fmt.Sprintf("%s parameter is invalid", fieldError.Field())
		}
		fieldErrors = append(fieldErrors, response.ValidationError{
			Field:   fieldError.Field(),
			Message: message,
		})
	}

	return fieldErrors
}

func optionParams(e echo.Context) (id string, optionID string, err error) {
	id = e.Param("id")
	if !utils.IsValidUUID(id) {
		return "", "", errs.ErrInvalidID
	}

	optionID = e.Param("optionId")
	if !utils.IsValidUUID(optionID) {
		return "", "", errs.ErrInvalidOptionID
	}

	return id, optionID, nil
}
