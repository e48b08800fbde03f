package services

import (
	"context"

	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
	"github.com/stackforge-labs/webapp_suite/internal/dto"
)

// ProductSvcFacade defines the product catalog operations.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
	SearchProducts(ctx context.Context, filter dto.ProductFilter) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	GetProductStatistics(ctx context.Context) (*domain.ProductStatistics, error)
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
}
