package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	portssvc "github.com/stackforge-labs/webapp_suite/internal/core/ports/services"
	"github.com/stackforge-labs/webapp_suite/internal/dto"
	"github.com/stackforge-labs/webapp_suite/internal/middleware"
)

// productHandler handles HTTP requests for the product catalog.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

// newProductHandler creates a new productHandler.
func newProductHandler(ps portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{productService: ps}
}

// registerProductRoutes registers all product-related routes.
func registerProductRoutes(rg *gin.RouterGroup, ps portssvc.ProductSvcFacade) {
	h := newProductHandler(ps)

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.searchProducts)
		products.GET("/categories", h.listCategories)
		products.GET("/statistics", h.getStatistics)
		products.GET("/:id", h.getProduct)
		products.PUT("/:id", h.updateProduct)
		products.DELETE("/:id", h.deleteProduct)
	}
}

// createProduct godoc
// @Summary Create a product
// @Tags products
// @Accept  json
// @Produce  json
// @Param   product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Product creation failed", slog.String("error", err.Error()))
		respondError(c, err, "Failed to create product")
		return
	}

	logger.Info("Product created", slog.String("product_id", product.ProductID))
	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// searchProducts godoc
// @Summary Search products
// @Description Filters by keyword, category and an inclusive price range
// @Tags products
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Page offset" default(0)
// @Param   keyword query string false "Keyword over product names"
// @Param   category query string false "Exact category"
// @Param   minPrice query string false "Minimum price"
// @Param   maxPrice query string false "Maximum price"
// @Success 200 {object} dto.ListProductsResponse
// @Failure 400 {object} map[string]string "Malformed price or inverted range"
// @Security BearerAuth
// @Router /products [get]
func (h *productHandler) searchProducts(c *gin.Context) {
	var params dto.SearchProductsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	filter := dto.ProductFilter{
		Limit:    params.Limit,
		Offset:   params.Offset,
		Keyword:  params.Keyword,
		Category: params.Category,
	}
	if params.MinPrice != "" {
		min, err := decimal.NewFromString(params.MinPrice)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid minPrice: " + params.MinPrice})
			return
		}
		filter.MinPrice = &min
	}
	if params.MaxPrice != "" {
		max, err := decimal.NewFromString(params.MaxPrice)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maxPrice: " + params.MaxPrice})
			return
		}
		filter.MaxPrice = &max
	}

	products, err := h.productService.SearchProducts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to search products")
		return
	}

	c.JSON(http.StatusOK, dto.ToListProductsResponse(products))
}

// listCategories godoc
// @Summary List distinct product categories
// @Tags products
// @Produce  json
// @Success 200 {array} string
// @Security BearerAuth
// @Router /products/categories [get]
func (h *productHandler) listCategories(c *gin.Context) {
	categories, err := h.productService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list categories")
		return
	}

	c.JSON(http.StatusOK, categories)
}

// getStatistics godoc
// @Summary Catalog statistics
// @Description Inventory totals, per-category counts, low-stock alerts and recent additions
// @Tags products
// @Produce  json
// @Success 200 {object} dto.ProductStatisticsResponse
// @Security BearerAuth
// @Router /products/statistics [get]
func (h *productHandler) getStatistics(c *gin.Context) {
	stats, err := h.productService.GetProductStatistics(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute product statistics")
		return
	}

	c.JSON(http.StatusOK, dto.ToProductStatisticsResponse(stats))
}

// getProduct godoc
// @Summary Get a product by ID
// @Tags products
// @Produce  json
// @Param   id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Security BearerAuth
// @Router /products/{id} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	product, err := h.productService.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve product")
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// updateProduct godoc
// @Summary Update a product
// @Tags products
// @Accept  json
// @Produce  json
// @Param   id path string true "Product ID"
// @Param   product body dto.UpdateProductRequest true "Product fields"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Product not found"
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		logger.Warn("Product update failed", slog.String("product_id", c.Param("id")), slog.String("error", err.Error()))
		respondError(c, err, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// deleteProduct godoc
// @Summary Delete a product
// @Tags products
// @Produce  json
// @Param   id path string true "Product ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	if err := h.productService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete product")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Product deleted"})
}
