package mapper

import (
	"inventory-service/internal/application/common"
	"inventory-service/internal/domain/entities"
)

func NewProductResultFromEntity(product *entities.Product) *common.ProductResult {
	return &common.ProductResult{
		Id:            product.Id,
		Name:          product.Name,
		Category:      product.Category,
		Price:         product.Price,
		StockQuantity: product.StockQuantity,
		UpdatedAt:     product.UpdatedAt,
	}
}

func NewProductResultsFromEntities(products []*entities.Product) []*common.ProductResult {
	results := make([]*common.ProductResult, 0, len(products))
	for _, product := range products {
		results = append(results, NewProductResultFromEntity(product))
	}
	return results
}

func NewSaleResultFromEntity(sale *entities.Sale) *common.SaleResult {
	return &common.SaleResult{
		Id:           sale.Id,
		ProductName:  sale.ProductName,
		QuantitySold: sale.QuantitySold,
		TotalAmount:  sale.TotalAmount,
		SaleDate:     sale.SaleDate,
	}
}

func NewSaleResultsFromEntities(sales []*entities.Sale) []*common.SaleResult {
	results := make([]*common.SaleResult, 0, len(sales))
	for _, sale := range sales {
		results = append(results, NewSaleResultFromEntity(sale))
	}
	return results
}

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		Id:        user.Id,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
