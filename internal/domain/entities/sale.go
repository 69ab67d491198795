package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Sale is an append-only record of one stock-reducing transaction. The
// product name is copied at sale time on purpose: deleting a product must
// not rewrite sales history.
type Sale struct {
	Id           uuid.UUID
	ProductName  string
	QuantitySold int
	TotalAmount  float64
	SaleDate     time.Time
}

func NewSale(productName string, quantitySold int, unitPrice float64) *Sale {
	return &Sale{
		Id:           uuid.New(),
		ProductName:  productName,
		QuantitySold: quantitySold,
		TotalAmount:  unitPrice * float64(quantitySold),
		SaleDate:     time.Now(),
	}
}

func (s *Sale) validate() error {
	if s.ProductName == "" {
		return errors.New("product name must not be empty")
	}
	if s.QuantitySold <= 0 {
		return errors.New("quantity sold must be positive")
	}
	if s.TotalAmount < 0 {
		return errors.New("total amount must not be negative")
	}
	return nil
}
