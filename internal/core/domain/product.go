package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is an entry in the product catalog.
type Product struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name" db:"name"`
	Category  string          `json:"category" db:"category"`
	Price     decimal.Decimal `json:"price" db:"price"`
	Quantity  int             `json:"quantity" db:"quantity"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
}

// CategoryCount pairs a category with the number of products it holds.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// ProductStatistics aggregates catalog-wide inventory figures for the
// dashboard: totals, money aggregates, per-category counts, restock
// candidates and the latest additions.
type ProductStatistics struct {
	TotalProducts       int64
	TotalQuantity       int64
	TotalInventoryValue decimal.Decimal
	AveragePrice        decimal.Decimal
	ProductsByCategory  []CategoryCount
	LowStockProducts    []Product
	RecentProducts      []Product
}
