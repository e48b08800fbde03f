package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stackforge-labs/webapp_suite/internal/apperrors"
	"github.com/stackforge-labs/webapp_suite/internal/core/domain"
	portsrepo "github.com/stackforge-labs/webapp_suite/internal/core/ports/repositories"
)

type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(db *pgxpool.Pool) portsrepo.ProductRepository {
	return &PgxProductRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ProductRepository = (*PgxProductRepository)(nil)

const productColumns = `product_id, name, category, price, quantity, created_at`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ProductID,
		&p.Name,
		&p.Category,
		&p.Price,
		&p.Quantity,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan product row: %w", err)
	}
	return &p, nil
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	query := `
        INSERT INTO products (product_id, name, category, price, quantity, created_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.Pool.Exec(ctx, query,
		product.ProductID,
		product.Name,
		product.Category,
		product.Price,
		product.Quantity,
		product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`
	return scanProduct(r.Pool.QueryRow(ctx, query, productID))
}

func (r *PgxProductRepository) FindProducts(ctx context.Context, filter portsrepo.ProductFilter) ([]domain.Product, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.Keyword != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", argPos)
		args = append(args, "%"+filter.Keyword+"%")
		argPos++
	}
	if filter.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argPos)
		args = append(args, filter.Category)
		argPos++
	}
	if filter.MinPrice != nil {
		query += fmt.Sprintf(" AND price >= $%d", argPos)
		args = append(args, *filter.MinPrice)
		argPos++
	}
	if filter.MaxPrice != nil {
		query += fmt.Sprintf(" AND price <= $%d", argPos)
		args = append(args, *filter.MaxPrice)
		argPos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, limit, offset)

	return r.queryProducts(ctx, query, args...)
}

func (r *PgxProductRepository) queryProducts(ctx context.Context, query string, args ...interface{}) ([]domain.Product, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", rows.Err())
	}
	return products, nil
}

func (r *PgxProductRepository) FindCategories(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT DISTINCT category FROM products ORDER BY category;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", rows.Err())
	}
	return categories, nil
}

// Result caps for the dashboard lists, matching what it renders.
const (
	lowStockResultLimit = 10
	recentProductLimit  = 5
)

// FindProductStatistics gathers the dashboard aggregates in one place:
// catalog totals, per-category counts ordered by size, products below the
// stock threshold and the most recent additions.
func (r *PgxProductRepository) FindProductStatistics(ctx context.Context, lowStockThreshold int) (*domain.ProductStatistics, error) {
	var stats domain.ProductStatistics

	totalsQuery := `
        SELECT COUNT(*),
               COALESCE(SUM(quantity), 0),
               COALESCE(SUM(price * quantity), 0),
               COALESCE(AVG(price), 0)
        FROM products;
    `
	err := r.Pool.QueryRow(ctx, totalsQuery).Scan(
		&stats.TotalProducts,
		&stats.TotalQuantity,
		&stats.TotalInventoryValue,
		&stats.AveragePrice,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query product totals: %w", err)
	}

	rows, err := r.Pool.Query(ctx, `
        SELECT category, COUNT(*)
        FROM products
        GROUP BY category
        ORDER BY COUNT(*) DESC;
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query category counts: %w", err)
	}
	defer rows.Close()

	stats.ProductsByCategory = []domain.CategoryCount{}
	for rows.Next() {
		var cc domain.CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		stats.ProductsByCategory = append(stats.ProductsByCategory, cc)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category count rows: %w", rows.Err())
	}

	lowStockQuery := `SELECT ` + productColumns + ` FROM products WHERE quantity < $1 ORDER BY quantity ASC LIMIT $2;`
	stats.LowStockProducts, err = r.queryProducts(ctx, lowStockQuery, lowStockThreshold, lowStockResultLimit)
	if err != nil {
		return nil, err
	}

	recentQuery := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1;`
	stats.RecentProducts, err = r.queryProducts(ctx, recentQuery, recentProductLimit)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	query := `
        UPDATE products
        SET name = $1, category = $2, price = $3, quantity = $4
        WHERE product_id = $5;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		product.Name,
		product.Category,
		product.Price,
		product.Quantity,
		product.ProductID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("product not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("product not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
