package interfaces

import (
	"context"

	"inventory-service/internal/application/command"
	"inventory-service/internal/application/query"
)

type SalesService interface {
	SellProduct(ctx context.Context, sellCommand *command.SellProductCommand) (*command.SellProductCommandResult, error)
	ListSales(ctx context.Context) (*query.SaleQueryListResult, error)
}
