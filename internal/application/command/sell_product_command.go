package command

import "github.com/google/uuid"

type SellProductCommand struct {
	ProductId    uuid.UUID `json:"productId"`
	QuantitySold int       `json:"quantitySold"`
}

type SellProductCommandResult struct {
	TotalAmount float64 `json:"totalAmount"`
}
