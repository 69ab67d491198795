package command

import "inventory-service/internal/application/common"

type CreateProductCommand struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
}

type CreateProductCommandResult struct {
	Result *common.ProductResult `json:"result"`
}
