package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inventory-service/internal/domain"
	"inventory-service/internal/domain/entities"
	"inventory-service/internal/domain/repositories"
)

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(store *Store) repositories.ProductRepository {
	return &ProductRepository{collection: store.Products()}
}

func (r *ProductRepository) Create(ctx context.Context, product *entities.ValidatedProduct) (*entities.Product, error) {
	productEntity := product.GetProduct()

	doc := productDocument{
		Id:            productEntity.Id.String(),
		Name:          productEntity.Name,
		Category:      productEntity.Category,
		Price:         productEntity.Price,
		StockQuantity: productEntity.StockQuantity,
		UpdatedAt:     productEntity.UpdatedAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	return r.FindById(ctx, productEntity.Id)
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]*entities.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]*entities.Product, 0)
	for cursor.Next(ctx) {
		var doc productDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		product, err := r.mapToEntity(&doc)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, cursor.Err()
}

func (r *ProductRepository) FindById(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	var doc productDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&doc)
}

func (r *ProductRepository) Update(ctx context.Context, product *entities.ValidatedProduct) (*entities.Product, error) {
	productEntity := product.GetProduct()

	update := bson.M{"$set": bson.M{
		"name":           productEntity.Name,
		"category":       productEntity.Category,
		"price":          productEntity.Price,
		"stock_quantity": productEntity.StockQuantity,
		"updatedAt":      productEntity.UpdatedAt,
	}}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": productEntity.Id.String()}, update)
	if err != nil {
		return nil, err
	}

	return r.FindById(ctx, productEntity.Id)
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id.String()})
	return err
}

// DecrementStock relies on the atomicity of FindOneAndUpdate with a filtered
// $inc: the stock check and the decrement are a single document operation.
func (r *ProductRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (*entities.Product, error) {
	filter := bson.M{
		"_id":            id.String(),
		"stock_quantity": bson.M{"$gte": quantity},
	}
	update := bson.M{
		"$inc": bson.M{"stock_quantity": -quantity},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc productDocument
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			product, findErr := r.FindById(ctx, id)
			if findErr != nil {
				return nil, findErr
			}
			if product == nil {
				return nil, domain.ErrProductNotFound
			}
			return nil, domain.ErrInsufficientStock
		}
		return nil, err
	}

	return r.mapToEntity(&doc)
}

func (r *ProductRepository) mapToEntity(doc *productDocument) (*entities.Product, error) {
	id, err := uuid.Parse(doc.Id)
	if err != nil {
		return nil, err
	}

	return &entities.Product{
		Id:            id,
		Name:          doc.Name,
		Category:      doc.Category,
		Price:         doc.Price,
		StockQuantity: doc.StockQuantity,
		UpdatedAt:     doc.UpdatedAt,
	}, nil
}
