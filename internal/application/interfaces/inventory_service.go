package interfaces

import (
	"context"

	"github.com/google/uuid"

	"inventory-service/internal/application/command"
	"inventory-service/internal/application/query"
)

type InventoryService interface {
	CreateProduct(ctx context.Context, createCommand *command.CreateProductCommand) (*command.CreateProductCommandResult, error)
	ListProducts(ctx context.Context) (*query.ProductQueryListResult, error)
	UpdateProduct(ctx context.Context, updateCommand *command.UpdateProductCommand) (*command.UpdateProductCommandResult, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
