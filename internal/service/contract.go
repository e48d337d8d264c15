package service

import (
	"context"

	"github.com/andriekus/product-options-service/internal/dto"
)

type ProductService interface {
	GetProducts(ctx context.Context, query dto.ProductQuery) (data []dto.ProductResponse, err error)
	GetProductByID(ctx context.Context, id string) (data dto.ProductResponse, err error)
	AddProduct(ctx context.Context, req dto.ProductRequest) (data dto.ProductResponse, err error)
	UpdateProduct(ctx context.Context, id string, req dto.ProductRequest) (data dto.ProductResponse, err error)
	DeleteProduct(ctx context.Context, id string) (err error)

	GetProductOptions(ctx context.Context, productID string) (data []dto.ProductOptionResponse, err error)
	GetProductOption(ctx context.Context, productID string, optionID string) (data dto.ProductOptionResponse, err error)
	AddProductOption(ctx context.Context, productID string, req dto.ProductOptionRequest) (data dto.ProductOptionResponse, err error)
	UpdateProductOption(ctx context.Context, productID string, optionID string, req dto.ProductOptionRequest) (data dto.ProductOptionResponse, err error)
	DeleteProductOption(ctx context.Context, productID string, optionID string) (err error)
}

// EventPublisher pushes change-data events to the broker. Publishing is
// best-effort; a failed publish never fails the originating request.
type EventPublisher interface {
	Publish(msg []byte) error
}
