package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stackforge-labs/webapp_suite/internal/apperrors"
	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
	portsrepo "github.com/stackforge-labs/webapp_suite/internal/core/ports/repositories"
	portssvc "github.com/stackforge-labs/webapp_suite/internal/core/ports/services"
	"github.com/stackforge-labs/webapp_suite/internal/dto"
)

type productService struct {
	productRepo portsrepo.ProductRepository
}

// NewProductService creates a new productService.
func NewProductService(productRepo portsrepo.ProductRepository) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("price must not be negative: %w", apperrors.ErrValidation)
	}

	product := domain.Product{
		ProductID: uuid.NewString(),
		Name:      req.Name,
		Category:  req.Category,
		Price:     req.Price,
		Quantity:  req.Quantity,
		CreatedAt: time.Now(),
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return s.productRepo.FindProductByID(ctx, productID)
}

func (s *productService) SearchProducts(ctx context.Context, filter dto.ProductFilter) ([]domain.Product, error) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return nil, fmt.Errorf("minPrice exceeds maxPrice: %w", apperrors.ErrValidation)
	}
	return s.productRepo.FindProducts(ctx, portsrepo.ProductFilter{
		Limit:    filter.Limit,
		Offset:   filter.Offset,
		Keyword:  filter.Keyword,
		Category: filter.Category,
		MinPrice: filter.MinPrice,
		MaxPrice: filter.MaxPrice,
	})
}

func (s *productService) ListCategories(ctx context.Context) ([]string, error) {
	return s.productRepo.FindCategories(ctx)
}

// lowStockThreshold marks products as restock candidates on the
// statistics dashboard.
const lowStockThreshold = 10

func (s *productService) GetProductStatistics(ctx context.Context) (*domain.ProductStatistics, error) {
	stats, err := s.productRepo.FindProductStatistics(ctx, lowStockThreshold)
	if err != nil {
		return nil, err
	}
	// Money aggregates are presented to cents.
	stats.TotalInventoryValue = stats.TotalInventoryValue.Round(2)
	stats.AveragePrice = stats.AveragePrice.Round(2)
	return stats, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("price must not be negative: %w", apperrors.ErrValidation)
	}

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Category = req.Category
	product.Price = req.Price
	product.Quantity = req.Quantity

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	return s.productRepo.DeleteProduct(ctx, productID)
}
