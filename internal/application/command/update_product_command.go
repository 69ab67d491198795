package command

import (
	"github.com/google/uuid"

	"inventory-service/internal/application/common"
)

// UpdateProductCommand carries a partial payload: nil fields keep the
// product's current value.
type UpdateProductCommand struct {
	Id            uuid.UUID `json:"-"`
	Name          *string   `json:"name"`
	Category      *string   `json:"category"`
	Price         *float64  `json:"price"`
	StockQuantity *int      `json:"stock_quantity"`
}

type UpdateProductCommandResult struct {
	Result *common.ProductResult `json:"result"`
}
