package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
)

// ProductFilter narrows product listings. Nil price bounds are open.
type ProductFilter struct {
	Limit    int
	Offset   int
	Keyword  string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// ProductRepository persists product records.
type ProductRepository interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
	FindProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	FindCategories(ctx context.Context) ([]string, error)
	FindProductStatistics(ctx context.Context, lowStockThreshold int) (*domain.ProductStatistics, error)
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, productID string) error
}
