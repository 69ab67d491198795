package entities

type ValidatedSale struct {
	*Sale
}

func NewValidatedSale(sale *Sale) (*ValidatedSale, error) {
	if err := sale.validate(); err != nil {
		return nil, err
	}

	return &ValidatedSale{Sale: sale}, nil
}

func (vs *ValidatedSale) GetSale() *Sale {
	return vs.Sale
}
