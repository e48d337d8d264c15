package repository

import (
	"context"

	"github.com/andriekus/product-options-service/internal/domain"
	pkgdto "github.com/andriekus/product-options-service/pkg/dto"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (err error)
	GetProducts(ctx context.Context, param pkgdto.Filter) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	AttachOption(ctx context.Context, productID string, optionID string) (err error)
	DetachOption(ctx context.Context, productID string, optionID string) (err error)
	HasOption(ctx context.Context, productID string, optionID string) (ok bool, err error)
	HandleTrx(ctx context.Context, fn func(ctx mongo.SessionContext) error) error

	AddProductOption(ctx context.Context, data domain.ProductOption) (err error)
	GetProductOptionByID(ctx context.Context, id string) (option domain.ProductOption, err error)
	GetProductOptionsByIDs(ctx context.Context, ids []string) (options []domain.ProductOption, err error)
	UpdateProductOption(ctx context.Context, data domain.ProductOption) (err error)
	DeleteProductOption(ctx context.Context, id string) (err error)
	DeleteProductOptionsByProductID(ctx context.Context, productID string) (err error)
}
