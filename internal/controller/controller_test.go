package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andriekus/product-options-service/internal/controller"
	"github.com/andriekus/product-options-service/internal/dto"
	"github.com/andriekus/product-options-service/pkg/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	productID = "6f8b9c20-1111-4f6e-9d3a-5a1b2c3d4e5f"
	optionID  = "0a1b2c3d-2222-4f6e-9d3a-5a1b2c3d4e5f"
)

// MockProductService is a mock implementation of service.ProductService
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetProducts(ctx context.Context, query dto.ProductQuery) ([]dto.ProductResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ProductResponse), args.Error(1)
}

func (m *MockProductService) GetProductByID(ctx context.Context, id string) (dto.ProductResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.ProductResponse), args.Error(1)
}

func (m *MockProductService) AddProduct(ctx context.Context, req dto.ProductRequest) (dto.ProductResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.ProductResponse), args.Error(1)
}

func (m *MockProductService) UpdateProduct(ctx context.Context, id string, req dto.ProductRequest) (dto.ProductResponse, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(dto.ProductResponse), args.Error(1)
}

func (m *MockProductService) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductService) GetProductOptions(ctx context.Context, productID string) ([]dto.ProductOptionResponse, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ProductOptionResponse), args.Error(1)
}

func (m *MockProductService) GetProductOption(ctx context.Context, productID string, optionID string) (dto.ProductOptionResponse, error) {
	args := m.Called(ctx, productID, optionID)
	return args.Get(0).(dto.ProductOptionResponse), args.Error(1)
}

func (m *MockProductService) AddProductOption(ctx context.Context, productID string, req dto.ProductOptionRequest) (dto.ProductOptionResponse, error) {
	args := m.Called(ctx, productID, req)
	return args.Get(0).(dto.ProductOptionResponse), args.Error(1)
}

func (m *MockProductService) UpdateProductOption(ctx context.Context, productID string, optionID string, req dto.ProductOptionRequest) (dto.ProductOptionResponse, error) {
	args := m.Called(ctx, productID, optionID, req)
	return args.Get(0).(dto.ProductOptionResponse), args.Error(1)
}

func (m *MockProductService) DeleteProductOption(ctx context.Context, productID string, optionID string) error {
	args := m.Called(ctx, productID, optionID)
	return args.Error(0)
}

func setupServer(svc *MockProductService) *echo.Echo {
	e := echo.New()
	controller.CreateProductController(e, svc)
	return e
}

func doRequest(e *echo.Echo, method string, target string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAddProduct_CollectsAllValidationFailures(t *testing.T) {
	mockSvc := new(MockProductService)
	e := setupServer(mockSvc)

	rec := doRequest(e, http.MethodPost, "/products", `{"description":"d","deliveryPrice":1}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])

	fieldErrors := body["message"].([]interface{})
	assert.Len(t, fieldErrors, 2)
	fields := []string{}
	for _, fe := range fieldErrors {
		fields = append(fields, fe.(map[string]interface{})["field"].(string))
	}
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "price")
	mockSvc.AssertNotCalled(t, "AddProduct")
}

func TestAddProduct_ZeroPricePassesValidation(t *testing.T) {
	mockSvc := new(MockProductService)
	e := setupServer(mockSvc)

	mockSvc.On("AddProduct", mock.Anything, mock.MatchedBy(func(req dto.ProductRequest) bool {
		return req.Price != nil && *req.Price == 0 && req.DeliveryPrice != nil && *req.DeliveryPrice == 0
	})).Return(dto.ProductResponse{ID: productID, Name: "Freebie"}, nil).Once()

	rec := doRequest(e, http.MethodPost, "/products", `{"name":"Freebie","description":"d","price":0,"deliveryPrice":0}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, productID, body["data"].(map[string]interface{})["id"])
	mockSvc.AssertExpectations(t)
}

func TestGetProductByID_MalformedUUIDFailsFast(t *testing.T) {
	mockSvc := new(MockProductService)
	e := setupServer(mockSvc)

	rec := doRequest(e, http.MethodGet, "/products/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid id parameter", body["message"])
	mockSvc.AssertNotCalled(t, "GetProductByID")
}

func TestGetProductByID_NotFound(t *testing.T) {
	mockSvc := new(MockProductService)
	e := setupServer(mockSvc)

	mockSvc.On("GetProductByID", mock.Anything, productID).
		Return(dto.ProductResponse{}, errs.ErrProductNotFound).Once()

	rec := doRequest(e, http.MethodGet, "/products/"+productID, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Product was not found", body["message"])
}

func TestGetProducts_Defaults(t *testing.T) {
	mockSvc := new(MockProductService)
	e := setupServer(mockSvc)

	mockSvc.On("GetProducts", mock.Anything, dto.ProductQuery{Name: "", Limit: 5, Page: 1}).
		Return([]dto.ProductResponse{}, nil).Once()

	rec := doRequest(e, http.MethodGet, "/products", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	items := body["data"].(map[string]interface{})["items"].([]interface{})
	assert.Len(t, items, 0)
	mockSvc.AssertExpectations(t)
}

func TestGetProducts_NamePassedThrough(t *testing.T) {
	mockSvc := new(MockProductService)
	e := setupServer(mockSvc)

	mockSvc.On("GetProducts", mock.Anything, dto.ProductQuery{Name: "Phone", Limit: 3, Page: 2}).
		Return([]dto.ProductResponse{}, nil).Once()

	rec := doRequest(e, http.MethodGet, "/products?name=Phone&limit=3&page=2", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	mockSvc.AssertExpectations(t)
}

func TestGetProducts_RejectsBadWindowParams(t *testing.T) {
	testCases := []struct {
		name    string
		target  string
		message string
	}{
		{"zero limit", "/products?limit=0", "Limit query parameter must be greater 0"},
		{"negative limit", "/products?limit=-2", "Limit query parameter must be greater 0"},
		{"non-numeric limit", "/products?limit=abc", "Limit query parameter must be greater 0"},
		{"zero page", "/products?page=0", "Page query parameter must be greater 0"},
		{"non-numeric page", "/products?page=x", "Page query parameter must be greater 0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc := new(MockProductService)
			e := setupServer(mockSvc)

			rec := doRequest(e, http.MethodGet, tc.target, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tc.message, body["message"])
			mockSvc.AssertNotCalled(t, "GetProducts")
		})
	}
}

func TestDeleteProduct_NoContent(t *testing.T) {
	mockSvc := new(MockProductService)
	e := setupServer(mockSvc)

	mockSvc.On("DeleteProduct", mock.Anything, productID).Return(nil).Once()

	rec := doRequest(e, http.MethodDelete, "/products/"+productID, "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	mockSvc.AssertExpectations(t)
}

func TestAddProductOption_Created(t *testing.T) {
	mockSvc := new(MockProductService)
	e := setupServer(mockSvc)

	mockSvc.On("AddProductOption", mock.Anything, productID, dto.ProductOptionRequest{Name: "64GB", Description: "Storage"}).
		Return(dto.ProductOptionResponse{ID: optionID, Name: "64GB", Description: "Storage", Product: productID}, nil).Once()

	rec := doRequest(e, http.MethodPost, "/products/"+productID+"/options", `{"name":"64GB","description":"Storage"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, optionID, data["id"])
	assert.Equal(t, productID, data["product"])
	mockSvc.AssertExpectations(t)
}

func TestGetProductOption_MalformedOptionID(t *testing.T) {
	mockSvc := new(MockProductService)
	e := setupServer(mockSvc)

	rec := doRequest(e, http.MethodGet, "/products/"+productID+"/options/bad", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Invalid option id parameter", body["message"])
	mockSvc.AssertNotCalled(t, "GetProductOption")
}

func TestUpdateProductOption_MismatchReturnsNotFound(t *testing.T) {
	mockSvc := new(MockProductService)
	e := setupServer(mockSvc)

	mockSvc.On("UpdateProductOption", mock.Anything, productID, optionID, mock.Anything).
		Return(dto.ProductOptionResponse{}, errs.ErrOptionMismatch).Once()

	rec := doRequest(e, http.MethodPut, "/products/"+productID+"/options/"+optionID, `{"name":"n","description":"d"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Product option does not belong to this product", body["message"])
}

func TestDeleteProductOption_NoContent(t *testing.T) {
	mockSvc := new(MockProductService)
	e := setupServer(mockSvc)

	mockSvc.On("DeleteProductOption", mock.Anything, productID, optionID).Return(nil).Once()

	rec := doRequest(e, http.MethodDelete, "/products/"+productID+"/options/"+optionID, "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	mockSvc.AssertExpectations(t)
}

func TestUnmatchedRoute(t *testing.T) {
	mockSvc := new(MockProductService)
	e := setupServer(mockSvc)

	rec := doRequest(e, http.MethodGet, "/nope", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Route not found", body["message"])
}
