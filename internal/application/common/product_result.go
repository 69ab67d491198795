package common

import (
	"time"

	"github.com/google/uuid"
)

type ProductResult struct {
	Id            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category,omitempty"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stock_quantity"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
