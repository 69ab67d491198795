package common

import (
	"time"

	"github.com/google/uuid"
)

type SaleResult struct {
	Id           uuid.UUID `json:"id"`
	ProductName  string    `json:"productName"`
	QuantitySold int       `json:"quantitySold"`
	TotalAmount  float64   `json:"totalAmount"`
	SaleDate     time.Time `json:"saleDate"`
}
