package query

import "inventory-service/internal/application/common"

type ProductQueryResult struct {
	Result *common.ProductResult `json:"result"`
}

type ProductQueryListResult struct {
	Result []*common.ProductResult `json:"result"`
}
