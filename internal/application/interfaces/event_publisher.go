package interfaces

import "inventory-service/internal/domain/entities"

// EventPublisher notifies other services about domain events. Publishing is
// fire-and-forget: failures are logged by implementations, never returned to
// the request path.
type EventPublisher interface {
	PublishProductCreated(product *entities.Product)
	PublishSaleRecorded(sale *entities.Sale)
}
