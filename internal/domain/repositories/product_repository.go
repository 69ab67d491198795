package repositories

import (
	"context"

	"github.com/google/uuid"

	"inventory-service/internal/domain/entities"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entities.ValidatedProduct) (*entities.Product, error)
	// FindAll returns every product, most recently updated first.
	FindAll(ctx context.Context) ([]*entities.Product, error)
	// FindById returns (nil, nil) when no product has the given id.
	FindById(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	Update(ctx context.Context, product *entities.ValidatedProduct) (*entities.Product, error)
	// Delete is idempotent: removing a missing id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
	// DecrementStock atomically decrements stock_quantity by quantity and
	// returns the updated product. It fails with domain.ErrInsufficientStock
	// when the current stock is below quantity and with
	// domain.ErrProductNotFound when the id does not exist; stock is left
	// unchanged in both cases. Concurrent calls can never drive stock
	// negative.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (*entities.Product, error)
}
