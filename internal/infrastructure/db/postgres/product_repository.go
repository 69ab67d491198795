package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"inventory-service/internal/domain"
	"inventory-service/internal/domain/entities"
	"inventory-service/internal/domain/repositories"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repositories.ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *entities.ValidatedProduct) (*entities.Product, error) {
	productEntity := product.GetProduct()

	productModel := ProductModel{
		Id:            productEntity.Id,
		Name:          productEntity.Name,
		Category:      productEntity.Category,
		Price:         productEntity.Price,
		StockQuantity: productEntity.StockQuantity,
		UpdatedAt:     productEntity.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&productModel).Error; err != nil {
		return nil, err
	}

	return r.FindById(ctx, productEntity.Id)
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]*entities.Product, error) {
	var productModels []ProductModel
	if err := r.db.WithContext(ctx).Order("updated_at DESC").Find(&productModels).Error; err != nil {
		return nil, err
	}

	products := make([]*entities.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, r.mapToEntity(&productModels[i]))
	}
	return products, nil
}

func (r *ProductRepository) FindById(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	var productModel ProductModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&productModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&productModel), nil
}

func (r *ProductRepository) Update(ctx context.Context, product *entities.ValidatedProduct) (*entities.Product, error) {
	productEntity := product.GetProduct()

	productModel := ProductModel{
		Id:            productEntity.Id,
		Name:          productEntity.Name,
		Category:      productEntity.Category,
		Price:         productEntity.Price,
		StockQuantity: productEntity.StockQuantity,
		UpdatedAt:     productEntity.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Save(&productModel).Error; err != nil {
		return nil, err
	}

	return r.FindById(ctx, productEntity.Id)
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&ProductModel{}, "id = ?", id).Error
}

// DecrementStock issues a conditional decrement so the stock check and the
// write happen in one statement. Two concurrent sells can never both pass
// the check and oversell.
func (r *ProductRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (*entities.Product, error) {
	res := r.db.WithContext(ctx).Model(&ProductModel{}).
		Where("id = ? AND stock_quantity >= ?", id, quantity).
		Updates(map[string]interface{}{
			"stock_quantity": gorm.Expr("stock_quantity - ?", quantity),
			"updated_at":     time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		product, err := r.FindById(ctx, id)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrProductNotFound
		}
		return nil, domain.ErrInsufficientStock
	}

	return r.FindById(ctx, id)
}

func (r *ProductRepository) mapToEntity(productModel *ProductModel) *entities.Product {
	return &entities.Product{
		Id:            productModel.Id,
		Name:          productModel.Name,
		Category:      productModel.Category,
		Price:         productModel.Price,
		StockQuantity: productModel.StockQuantity,
		UpdatedAt:     productModel.UpdatedAt,
	}
}
