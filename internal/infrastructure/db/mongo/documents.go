package mongo

import "time"

type productDocument struct {
	Id            string    `bson:"_id"`
	Name          string    `bson:"name"`
	Category      string    `bson:"category,omitempty"`
	Price         float64   `bson:"price"`
	StockQuantity int       `bson:"stock_quantity"`
	UpdatedAt     time.Time `bson:"updatedAt"`
}

type saleDocument struct {
	Id           string    `bson:"_id"`
	ProductName  string    `bson:"productName"`
	QuantitySold int       `bson:"quantitySold"`
	TotalAmount  float64   `bson:"totalAmount"`
	SaleDate     time.Time `bson:"saleDate"`
}

type userDocument struct {
	Id        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Password  string    `bson:"password"`
	CreatedAt time.Time `bson:"created_at"`
}
