package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/andriekus/product-options-service/config"
	"github.com/andriekus/product-options-service/internal/domain"
	"github.com/andriekus/product-options-service/internal/dto"
	"github.com/andriekus/product-options-service/internal/repository"
	pkgdto "github.com/andriekus/product-options-service/pkg/dto"
	"github.com/andriekus/product-options-service/pkg/errs"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductServiceImpl struct {
	mongoDBRepo repository.MongoDBProductRepository
	config      config.Config
	publisher   EventPublisher
}

func CreateProductService(mongoDBRepo repository.MongoDBProductRepository, config config.Config, publisher EventPublisher) ProductService {
	return &ProductServiceImpl{mongoDBRepo: mongoDBRepo, config: config, publisher: publisher}
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, query dto.ProductQuery) (data []dto.ProductResponse, err error) {
	products, err := s.mongoDBRepo.GetProducts(ctx, pkgdto.Filter{
		Name:   query.Name,
		Limit:  query.Limit,
		Offset: query.Limit * (query.Page - 1),
	})
	if err != nil {
		return
	}

	return s.expandProducts(ctx, products)
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (data dto.ProductResponse, err error) {
	product, err := s.mongoDBRepo.GetProductByID(ctx, id)
	if err != nil {
		if err == errs.ErrNotFound {
			return data, errs.ErrProductNotFound
		}
		return
	}

	expanded, err := s.expandProducts(ctx, []domain.Product{product})
	if err != nil {
		return
	}

	return expanded[0], nil
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, req dto.ProductRequest) (data dto.ProductResponse, err error) {
	product := domain.Product{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Description:    req.Description,
		Price:          *req.Price,
		DeliveryPrice:  *req.DeliveryPrice,
		ProductOptions: []string{},
	}

	err = s.mongoDBRepo.AddProduct(ctx, product)
	if err != nil {
		return
	}

	data = productResponse(product, nil)
	s.publishEvent("add_product", data)

	return data, nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, id string, req dto.ProductRequest) (data dto.ProductResponse, err error) {
	product, err := s.mongoDBRepo.GetProductByID(ctx, id)
	if err != nil {
		if err == errs.ErrNotFound {
			return data, errs.ErrUpdateProductNotFound
		}
		return
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = *req.Price
	product.DeliveryPrice = *req.DeliveryPrice

	err = s.mongoDBRepo.UpdateProduct(ctx, product)
	if err != nil {
		if err == errs.ErrNotFound {
			return data, errs.ErrUpdateProductNotFound
		}
		return
	}

	expanded, err := s.expandProducts(ctx, []domain.Product{product})
	if err != nil {
		return
	}

	s.publishEvent("update_product", expanded[0])

	return expanded[0], nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	product, err := s.mongoDBRepo.GetProductByID(ctx, id)
	if err != nil {
		if err == errs.ErrNotFound {
			return errs.ErrDeleteProductNotFound
		}
		return
	}

	err = s.mongoDBRepo.HandleTrx(ctx, func(ctx mongo.SessionContext) error {
		if err := s.mongoDBRepo.DeleteProduct(ctx, product.ID); err != nil {
			return err
		}
		return s.mongoDBRepo.DeleteProductOptionsByProductID(ctx, product.ID)
	})
	if err != nil {
		return
	}

	s.publishEvent("delete_product", product.ID)

	return nil
}

func (s *ProductServiceImpl) GetProductOptions(ctx context.Context, productID string) (data []dto.ProductOptionResponse, err error) {
	product, err := s.mongoDBRepo.GetProductByID(ctx, productID)
	if err != nil {
		if err == errs.ErrNotFound {
			return data, errs.ErrProductNotFound
		}
		return
	}

	options, err := s.mongoDBRepo.GetProductOptionsByIDs(ctx, product.ProductOptions)
	if err != nil {
		return
	}

	return orderOptions(product.ProductOptions, options), nil
}

func (s *ProductServiceImpl) GetProductOption(ctx context.Context, productID string, optionID string) (data dto.ProductOptionResponse, err error) {
	option, err := s.checkOptionOwnership(ctx, productID, optionID)
	if err != nil {
		return
	}

	return optionResponse(option), nil
}

func (s *ProductServiceImpl) AddProductOption(ctx context.Context, productID string, req dto.ProductOptionRequest) (data dto.ProductOptionResponse, err error) {
	_, err = s.mongoDBRepo.GetProductByID(ctx, productID)
	if err != nil {
		if err == errs.ErrNotFound {
			return data, errs.ErrProductNotFound
		}
		return
	}

	option := domain.ProductOption{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Product:     productID,
	}

	// The option write and the backreference push either both land or
	// neither does.
	err = s.mongoDBRepo.HandleTrx(ctx, func(ctx mongo.SessionContext) error {
		if err := s.mongoDBRepo.AddProductOption(ctx, option); err != nil {
			return err
		}
		return s.mongoDBRepo.AttachOption(ctx, productID, option.ID)
	})
	if err != nil {
		return
	}

	data = optionResponse(option)
	s.publishEvent("add_product_option", data)

	return data, nil
}

func (s *ProductServiceImpl) UpdateProductOption(ctx context.Context, productID string, optionID string, req dto.ProductOptionRequest) (data dto.ProductOptionResponse, err error) {
	option, err := s.checkOptionOwnership(ctx, productID, optionID)
	if err != nil {
		return
	}

	option.Name = req.Name
	option.Description = req.Description

	err = s.mongoDBRepo.UpdateProductOption(ctx, option)
	if err != nil {
		if err == errs.ErrNotFound {
			return data, errs.ErrProductOptionNotFound
		}
		return
	}

	data = optionResponse(option)
	s.publishEvent("update_product_option", data)

	return data, nil
}

func (s *ProductServiceImpl) DeleteProductOption(ctx context.Context, productID string, optionID string) (err error) {
	option, err := s.checkOptionOwnership(ctx, productID, optionID)
	if err != nil {
		return
	}

	err = s.mongoDBRepo.HandleTrx(ctx, func(ctx mongo.SessionContext) error {
		if err := s.mongoDBRepo.DeleteProductOption(ctx, option.ID); err != nil {
			return err
		}
		return s.mongoDBRepo.DetachOption(ctx, productID, option.ID)
	})
	if err != nil {
		return
	}

	s.publishEvent("delete_product_option", option.ID)

	return nil
}

// checkOptionOwnership loads the option after verifying the product exists
// and the product's backreference list contains the option id.
func (s *ProductServiceImpl) checkOptionOwnership(ctx context.Context, productID string, optionID string) (option domain.ProductOption, err error) {
	_, err = s.mongoDBRepo.GetProductByID(ctx, productID)
	if err != nil {
		if err == errs.ErrNotFound {
			return option, errs.ErrProductNotFound
		}
		return
	}

	option, err = s.mongoDBRepo.GetProductOptionByID(ctx, optionID)
	if err != nil {
		if err == errs.ErrNotFound {
			return option, errs.ErrProductOptionNotFound
		}
		return
	}

	ok, err := s.mongoDBRepo.HasOption(ctx, productID, optionID)
	if err != nil {
		return
	}
	if !ok {
		return option, errs.ErrOptionMismatch
	}

	return option, nil
}

// expandProducts resolves every backreference list with a single $in query.
// Ids whose option document is missing (the transient window of a two-step
// create) are dropped from the response rather than exposed half-attached.
func (s *ProductServiceImpl) expandProducts(ctx context.Context, products []domain.Product) (data []dto.ProductResponse, err error) {
	var optionIDs []string
	for _, product := range products {
		optionIDs = append(optionIDs, product.ProductOptions...)
	}

	options, err := s.mongoDBRepo.GetProductOptionsByIDs(ctx, optionIDs)
	if err != nil {
		return
	}

	optionsByID := make(map[string]domain.ProductOption, len(options))
	for _, option := range options {
		optionsByID[option.ID] = option
	}

	data = make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		expanded := make([]dto.ProductOptionResponse, 0, len(product.ProductOptions))
		for _, id := range product.ProductOptions {
			if option, ok := optionsByID[id]; ok {
				expanded = append(expanded, optionResponse(option))
			}
		}
		data = append(data, productResponse(product, expanded))
	}

	return data, nil
}

func (s *ProductServiceImpl) publishEvent(eventType string, data interface{}) {
	if s.publisher == nil {
		return
	}

	jsonMsg, err := json.Marshal(dto.EventMessage{EventType: eventType, Data: data})
	if err != nil {
		log.Error().Err(err).Str("component", "publishEvent").Msg("")
		return
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		err = s.publisher.Publish(jsonMsg)
		if err == nil {
			return
		}
		log.Error().Err(err).Str("component", "publishEvent").Str("event_type", eventType).Msg("")
		time.Sleep(time.Second * time.Duration(i+1))
	}

	log.Error().Err(err).Str("event_type", eventType).Msgf("giving up publishing event after %d attempts", maxRetries)
}

func productResponse(product domain.Product, options []dto.ProductOptionResponse) dto.ProductResponse {
	if options == nil {
		options = []dto.ProductOptionResponse{}
	}

	return dto.ProductResponse{
		ID:             product.ID,
		Name:           product.Name,
		Description:    product.Description,
		Price:          product.Price,
		DeliveryPrice:  product.DeliveryPrice,
		ProductOptions: options,
	}
}

func optionResponse(option domain.ProductOption) dto.ProductOptionResponse {
	return dto.ProductOptionResponse{
		ID:          option.ID,
		Name:        option.Name,
		Description: option.Description,
		Product:     option.Product,
	}
}

func orderOptions(ids []string, options []domain.ProductOption) []dto.ProductOptionResponse {
	optionsByID := make(map[string]domain.ProductOption, len(options))
	for _, option := range options {
		optionsByID[option.ID] = option
	}

	ordered := make([]dto.ProductOptionResponse, 0, len(ids))
	for _, id := range ids {
		if option, ok := optionsByID[id]; ok {
			ordered = append(ordered, optionResponse(option))
		}
	}

	return ordered
}
