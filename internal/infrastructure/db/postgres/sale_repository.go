package postgres

import (
	"context"

	"gorm.io/gorm"

	"inventory-service/internal/domain/entities"
	"inventory-service/internal/domain/repositories"
)

type SaleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) repositories.SaleRepository {
	return &SaleRepository{db: db}
}

func (r *SaleRepository) Create(ctx context.Context, sale *entities.ValidatedSale) (*entities.Sale, error) {
	saleEntity := sale.GetSale()

	saleModel := SaleModel{
		Id:           saleEntity.Id,
		ProductName:  saleEntity.ProductName,
		QuantitySold: saleEntity.QuantitySold,
		TotalAmount:  saleEntity.TotalAmount,
		SaleDate:     saleEntity.SaleDate,
	}

	if err := r.db.WithContext(ctx).Create(&saleModel).Error; err != nil {
		return nil, err
	}

	return r.mapToEntity(&saleModel), nil
}

func (r *SaleRepository) FindAll(ctx context.Context) ([]*entities.Sale, error) {
	var saleModels []SaleModel
	if err := r.db.WithContext(ctx).Order("sale_date DESC").Find(&saleModels).Error; err != nil {
		return nil, err
	}

	sales := make([]*entities.Sale, 0, len(saleModels))
	for i := range saleModels {
		sales = append(sales, r.mapToEntity(&saleModels[i]))
	}
	return sales, nil
}

func (r *SaleRepository) mapToEntity(saleModel *SaleModel) *entities.Sale {
	return &entities.Sale{
		Id:           saleModel.Id,
		ProductName:  saleModel.ProductName,
		QuantitySold: saleModel.QuantitySold,
		TotalAmount:  saleModel.TotalAmount,
		SaleDate:     saleModel.SaleDate,
	}
}
