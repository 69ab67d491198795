package mongo

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inventory-service/internal/domain/entities"
	"inventory-service/internal/domain/repositories"
)

type SaleRepository struct {
	collection *mongo.Collection
}

func NewSaleRepository(store *Store) repositories.SaleRepository {
	return &SaleRepository{collection: store.Sales()}
}

func (r *SaleRepository) Create(ctx context.Context, sale *entities.ValidatedSale) (*entities.Sale, error) {
	saleEntity := sale.GetSale()

	doc := saleDocument{
		Id:           saleEntity.Id.String(),
		ProductName:  saleEntity.ProductName,
		QuantitySold: saleEntity.QuantitySold,
		TotalAmount:  saleEntity.TotalAmount,
		SaleDate:     saleEntity.SaleDate,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	return r.mapToEntity(&doc)
}

func (r *SaleRepository) FindAll(ctx context.Context) ([]*entities.Sale, error) {
	opts := options.Find().SetSort(bson.D{{Key: "saleDate", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sales := make([]*entities.Sale, 0)
	for cursor.Next(ctx) {
		var doc saleDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		sale, err := r.mapToEntity(&doc)
		if err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}
	return sales, cursor.Err()
}

func (r *SaleRepository) mapToEntity(doc *saleDocument) (*entities.Sale, error) {
	id, err := uuid.Parse(doc.Id)
	if err != nil {
		return nil, err
	}

	return &entities.Sale{
		Id:           id,
		ProductName:  doc.ProductName,
		QuantitySold: doc.QuantitySold,
		TotalAmount:  doc.TotalAmount,
		SaleDate:     doc.SaleDate,
	}, nil
}
