package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"inventory-service/internal/application/command"
	"inventory-service/internal/application/interfaces"
	"inventory-service/internal/application/mapper"
	"inventory-service/internal/application/query"
	"inventory-service/internal/domain"
	"inventory-service/internal/domain/entities"
	"inventory-service/internal/domain/repositories"
)

type InventoryService struct {
	productRepo repositories.ProductRepository
	publisher   interfaces.EventPublisher
}

func NewInventoryService(
	productRepo repositories.ProductRepository,
	publisher interfaces.EventPublisher,
) interfaces.InventoryService {
	return &InventoryService{
		productRepo: productRepo,
		publisher:   publisher,
	}
}

func (s *InventoryService) CreateProduct(ctx context.Context, createCommand *command.CreateProductCommand) (*command.CreateProductCommandResult, error) {
	newProduct := entities.NewProduct(
		createCommand.Name,
		createCommand.Category,
		createCommand.Price,
		createCommand.StockQuantity,
	)

	validatedProduct, err := entities.NewValidatedProduct(newProduct)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	createdProduct, err := s.productRepo.Create(ctx, validatedProduct)
	if err != nil {
		return nil, err
	}

	s.publisher.PublishProductCreated(createdProduct)

	return &command.CreateProductCommandResult{
		Result: mapper.NewProductResultFromEntity(createdProduct),
	}, nil
}

func (s *InventoryService) ListProducts(ctx context.Context) (*query.ProductQueryListResult, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &query.ProductQueryListResult{
		Result: mapper.NewProductResultsFromEntities(products),
	}, nil
}

// UpdateProduct merges the supplied fields into the stored product. Fields
// absent from the command keep their current values.
func (s *InventoryService) UpdateProduct(ctx context.Context, updateCommand *command.UpdateProductCommand) (*command.UpdateProductCommandResult, error) {
	product, err := s.productRepo.FindById(ctx, updateCommand.Id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	err = product.ApplyUpdate(
		updateCommand.Name,
		updateCommand.Category,
		updateCommand.Price,
		updateCommand.StockQuantity,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	validatedProduct, err := entities.NewValidatedProduct(product)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	updatedProduct, err := s.productRepo.Update(ctx, validatedProduct)
	if err != nil {
		return nil, err
	}

	return &command.UpdateProductCommandResult{
		Result: mapper.NewProductResultFromEntity(updatedProduct),
	}, nil
}

// DeleteProduct is idempotent: deleting an id that does not exist succeeds.
// Past sales keep the product name they recorded.
func (s *InventoryService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.Delete(ctx, id)
}
