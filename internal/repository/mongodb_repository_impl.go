package repository

import (
	"context"
	"regexp"

	"github.com/andriekus/product-options-service/internal/domain"
	pkgdto "github.com/andriekus/product-options-service/pkg/dto"
	"github.com/andriekus/product-options-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	productCollection = "products"
	optionCollection  = "product_options"
)

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBRepository(db *mongo.Database) MongoDBProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (err error) {
	_, err = r.db.Collection(productCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return
}

// productFilter builds the listing filter: an empty name selects everything,
// otherwise an anchored case-insensitive prefix match with regex
// metacharacters in the search text escaped.
func productFilter(name string) bson.D {
	if name == "" {
		return bson.D{}
	}

	return bson.D{{Key: "name", Value: primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(name),
		Options: "i",
	}}}
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context, param pkgdto.Filter) (data []domain.Product, err error) {
	filter := productFilter(param.Name)

	opts := options.Find()
	if param.Limit > 0 {
		opts = opts.SetLimit(param.Limit).SetSkip(param.Offset)
	}

	cursor, err := r.db.Collection(productCollection).Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	data = []domain.Product{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection(productCollection).FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return product, err
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: data.Name},
		{Key: "description", Value: data.Description},
		{Key: "price", Value: data.Price},
		{Key: "deliveryPrice", Value: data.DeliveryPrice},
	}}}

	result, err := r.db.Collection(productCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("Failed to update product")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBProductRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	_, err = r.db.Collection(productCollection).DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return
	}

	return
}

func (r *MongoDBProductRepositoryImpl) AttachOption(ctx context.Context, productID string, optionID string) (err error) {
	filter := bson.D{{Key: "_id", Value: productID}}
	update := bson.D{{Key: "$push", Value: bson.D{{Key: "productOptions", Value: optionID}}}}

	result, err := r.db.Collection(productCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AttachOption").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

// DetachOption removes the reference with $pull, which keeps the relative
// order of the remaining option ids.
func (r *MongoDBProductRepositoryImpl) DetachOption(ctx context.Context, productID string, optionID string) (err error) {
	filter := bson.D{{Key: "_id", Value: productID}}
	update := bson.D{{Key: "$pull", Value: bson.D{{Key: "productOptions", Value: optionID}}}}

	result, err := r.db.Collection(productCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DetachOption").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

// HasOption is a contains-reference query on the backreference list, so
// membership checks do not depend on expanding the list first.
func (r *MongoDBProductRepositoryImpl) HasOption(ctx context.Context, productID string, optionID string) (ok bool, err error) {
	filter := bson.D{
		{Key: "_id", Value: productID},
		{Key: "productOptions", Value: optionID},
	}

	count, err := r.db.Collection(productCollection).CountDocuments(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "HasOption").Msg("")
		return false, err
	}

	return count > 0, nil
}

func (r *MongoDBProductRepositoryImpl) HandleTrx(ctx context.Context, fn func(ctx mongo.SessionContext) error) error {
	session, err := r.db.Client().StartSession()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "HandleTrx").Msg("")
		return err
	}

	// Defers ending the session after the transaction is committed or ended
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(ctx mongo.SessionContext) (interface{}, error) {
		err := fn(ctx)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "HandleTrx").Msg("")
		}
		return nil, err
	})

	return err
}

func (r *MongoDBProductRepositoryImpl) AddProductOption(ctx context.Context, data domain.ProductOption) (err error) {
	_, err = r.db.Collection(optionCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProductOption").Msg("")
		return
	}

	return
}

func (r *MongoDBProductRepositoryImpl) GetProductOptionByID(ctx context.Context, id string) (option domain.ProductOption, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection(optionCollection).FindOne(ctx, filter).Decode(&option)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return option, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductOptionByID").Msg("")
		return option, err
	}

	return option, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductOptionsByIDs(ctx context.Context, ids []string) (options []domain.ProductOption, err error) {
	options = []domain.ProductOption{}
	if len(ids) == 0 {
		return options, nil
	}

	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}

	cursor, err := r.db.Collection(optionCollection).Find(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductOptionsByIDs").Msg("")
		return
	}

	if err = cursor.All(ctx, &options); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductOptionsByIDs").Msg("")
		return
	}

	return options, nil
}

func (r *MongoDBProductRepositoryImpl) UpdateProductOption(ctx context.Context, data domain.ProductOption) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: data.Name},
		{Key: "description", Value: data.Description},
	}}}

	result, err := r.db.Collection(optionCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProductOption").Msg("Failed to update product option")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBProductRepositoryImpl) DeleteProductOption(ctx context.Context, id string) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	_, err = r.db.Collection(optionCollection).DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProductOption").Msg("")
		return
	}

	return
}

func (r *MongoDBProductRepositoryImpl) DeleteProductOptionsByProductID(ctx context.Context, productID string) (err error) {
	filter := bson.D{{Key: "product", Value: productID}}

	_, err = r.db.Collection(optionCollection).DeleteMany(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProductOptionsByProductID").Msg("")
		return
	}

	return
}
