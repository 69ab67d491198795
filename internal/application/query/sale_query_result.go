package query

import "inventory-service/internal/application/common"

type SaleQueryListResult struct {
	Result []*common.SaleResult `json:"result"`
}
