package postgres

import (
	"time"

	"github.com/google/uuid"
)

type ProductModel struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"not null"`
	Category      string
	Price         float64 `gorm:"not null"`
	StockQuantity int     `gorm:"not null"`
	UpdatedAt     time.Time
}

func (ProductModel) TableName() string {
	return "products"
}

type SaleModel struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductName  string    `gorm:"not null"`
	QuantitySold int       `gorm:"not null"`
	TotalAmount  float64   `gorm:"not null"`
	SaleDate     time.Time `gorm:"index"`
}

func (SaleModel) TableName() string {
	return "sales"
}

type UserModel struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Password  string    `gorm:"not null"`
	CreatedAt time.Time
}

func (UserModel) TableName() string {
	return "users"
}
