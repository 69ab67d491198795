package services

import (
	"context"
	"fmt"

	"inventory-service/internal/application/command"
	"inventory-service/internal/application/interfaces"
	"inventory-service/internal/application/mapper"
	"inventory-service/internal/application/query"
	"inventory-service/internal/domain"
	"inventory-service/internal/domain/entities"
	"inventory-service/internal/domain/repositories"
)

type SalesService struct {
	productRepo repositories.ProductRepository
	saleRepo    repositories.SaleRepository
	publisher   interfaces.EventPublisher
}

func NewSalesService(
	productRepo repositories.ProductRepository,
	saleRepo repositories.SaleRepository,
	publisher interfaces.EventPublisher,
) interfaces.SalesService {
	return &SalesService{
		productRepo: productRepo,
		saleRepo:    saleRepo,
		publisher:   publisher,
	}
}

// SellProduct decrements stock and records the sale. The decrement is an
// atomic conditional update, so concurrent sells cannot oversell, and the
// sale snapshots the name and price of the record it returns rather than an
// earlier read. The sale insert that follows is a separate write: if it
// fails the decrement stands with no matching sale record, which the caller
// sees as a storage error.
func (s *SalesService) SellProduct(ctx context.Context, sellCommand *command.SellProductCommand) (*command.SellProductCommandResult, error) {
	if sellCommand.QuantitySold <= 0 {
		return nil, fmt.Errorf("%w: quantity sold must be positive", domain.ErrValidation)
	}

	product, err := s.productRepo.DecrementStock(ctx, sellCommand.ProductId, sellCommand.QuantitySold)
	if err != nil {
		return nil, err
	}

	newSale := entities.NewSale(product.Name, sellCommand.QuantitySold, product.Price)
	validatedSale, err := entities.NewValidatedSale(newSale)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	createdSale, err := s.saleRepo.Create(ctx, validatedSale)
	if err != nil {
		return nil, err
	}

	s.publisher.PublishSaleRecorded(createdSale)

	return &command.SellProductCommandResult{
		TotalAmount: createdSale.TotalAmount,
	}, nil
}

func (s *SalesService) ListSales(ctx context.Context) (*query.SaleQueryListResult, error) {
	sales, err := s.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &query.SaleQueryListResult{
		Result: mapper.NewSaleResultsFromEntities(sales),
	}, nil
}
