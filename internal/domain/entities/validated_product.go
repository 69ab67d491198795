package entities

type ValidatedProduct struct {
	*Product
}

func NewValidatedProduct(product *Product) (*ValidatedProduct, error) {
	if err := product.validate(); err != nil {
		return nil, err
	}

	return &ValidatedProduct{Product: product}, nil
}

func (vp *ValidatedProduct) GetProduct() *Product {
	return vp.Product
}
