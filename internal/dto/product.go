package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
)

// CreateProductRequest carries the fields for creating a product.
type CreateProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required,decimal_nonneg"`
	Quantity int             `json:"quantity" binding:"gte=0"`
}

// UpdateProductRequest carries the mutable product fields.
type UpdateProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required,decimal_nonneg"`
	Quantity int             `json:"quantity" binding:"gte=0"`
}

// SearchProductsParams defines query parameters for listing and
// searching products. Prices arrive as strings and are parsed in the
// handler so that malformed values surface as 400s.
type SearchProductsParams struct {
	Limit    int    `form:"limit,default=20"`
	Offset   int    `form:"offset,default=0"`
	Keyword  string `form:"keyword"`
	Category string `form:"category"`
	MinPrice string `form:"minPrice"`
	MaxPrice string `form:"maxPrice"`
}

// ProductFilter is the parsed search filter passed to the service.
type ProductFilter struct {
	Limit    int
	Offset   int
	Keyword  string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// ProductResponse is the outward view of a product.
type ProductResponse struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	CreatedAt time.Time       `json:"createdAt"`
}

func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID: p.ProductID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		Quantity:  p.Quantity,
		CreatedAt: p.CreatedAt,
	}
}

// CategoryCountResponse is one per-category slice of the statistics.
type CategoryCountResponse struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// ProductStatisticsResponse is the dashboard view of the catalog.
type ProductStatisticsResponse struct {
	TotalProducts       int64                   `json:"totalProducts"`
	TotalQuantity       int64                   `json:"totalQuantity"`
	TotalInventoryValue decimal.Decimal         `json:"totalInventoryValue"`
	AveragePrice        decimal.Decimal         `json:"averagePrice"`
	ProductsByCategory  []CategoryCountResponse `json:"productsByCategory"`
	LowStockProducts    []ProductResponse       `json:"lowStockProducts"`
	RecentProducts      []ProductResponse       `json:"recentProducts"`
}

func ToProductStatisticsResponse(s *domain.ProductStatistics) ProductStatisticsResponse {
	categories := make([]CategoryCountResponse, len(s.ProductsByCategory))
	for i, cc := range s.ProductsByCategory {
		categories[i] = CategoryCountResponse{Category: cc.Category, Count: cc.Count}
	}
	return ProductStatisticsResponse{
		TotalProducts:       s.TotalProducts,
		TotalQuantity:       s.TotalQuantity,
		TotalInventoryValue: s.TotalInventoryValue,
		AveragePrice:        s.AveragePrice,
		ProductsByCategory:  categories,
		LowStockProducts:    ToListProductsResponse(s.LowStockProducts).Products,
		RecentProducts:      ToListProductsResponse(s.RecentProducts).Products,
	}
}

// ListProductsResponse wraps a page of products.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

func ToListProductsResponse(products []domain.Product) ListProductsResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return ListProductsResponse{Products: responses}
}
