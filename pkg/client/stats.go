package client

import "inventory-service/internal/application/common"

// DashboardStats are the aggregate numbers the dashboard derives from the
// full product and sales lists. The server does no aggregation.
type DashboardStats struct {
	TotalProducts   int
	TotalStockUnits int
	TotalStockValue float64
	LowStockCount   int
	TotalRevenue    float64
	TotalSales      int
}

// ComputeStats derives dashboard aggregates client-side. Products with
// stock strictly below lowStockThreshold count as low stock.
func ComputeStats(products []*common.ProductResult, sales []*common.SaleResult, lowStockThreshold int) DashboardStats {
	stats := DashboardStats{
		TotalProducts: len(products),
		TotalSales:    len(sales),
	}

	for _, p := range products {
		stats.TotalStockUnits += p.StockQuantity
		stats.TotalStockValue += p.Price * float64(p.StockQuantity)
		if p.StockQuantity < lowStockThreshold {
			stats.LowStockCount++
		}
	}

	for _, s := range sales {
		stats.TotalRevenue += s.TotalAmount
	}

	return stats
}
