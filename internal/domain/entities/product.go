package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Product struct {
	Id            uuid.UUID
	Name          string
	Category      string
	Price         float64
	StockQuantity int
	UpdatedAt     time.Time
}

func NewProduct(name, category string, price float64, stockQuantity int) *Product {
	return &Product{
		Id:            uuid.New(),
		Name:          name,
		Category:      category,
		Price:         price,
		StockQuantity: stockQuantity,
		UpdatedAt:     time.Now(),
	}
}

func (p *Product) validate() error {
	if p.Name == "" {
		return errors.New("name must not be empty")
	}
	if p.Price < 0 {
		return errors.New("price must not be negative")
	}
	if p.StockQuantity < 0 {
		return errors.New("stock_quantity must not be negative")
	}
	return nil
}

// ApplyUpdate merges the supplied fields into the product. Nil fields are
// left untouched (set semantics).
func (p *Product) ApplyUpdate(name, category *string, price *float64, stockQuantity *int) error {
	if name != nil {
		p.Name = *name
	}
	if category != nil {
		p.Category = *category
	}
	if price != nil {
		p.Price = *price
	}
	if stockQuantity != nil {
		p.StockQuantity = *stockQuantity
	}
	p.UpdatedAt = time.Now()
	return p.validate()
}
