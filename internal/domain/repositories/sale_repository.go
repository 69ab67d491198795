package repositories

import (
	"context"

	"inventory-service/internal/domain/entities"
)

// SaleRepository is append-only: sales are never updated or deleted.
type SaleRepository interface {
	Create(ctx context.Context, sale *entities.ValidatedSale) (*entities.Sale, error)
	// FindAll returns every sale, newest first.
	FindAll(ctx context.Context) ([]*entities.Sale, error)
}
