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

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(db *pgxpool.Pool) portsrepo.CustomerRepository {
	return &PgxCustomerRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.CustomerRepository = (*PgxCustomerRepository)(nil)

const customerColumns = `customer_id, customer_code, full_name, email, phone, address, status, created_at`

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.CustomerID,
		&c.CustomerCode,
		&c.FullName,
		&c.Email,
		&c.Phone,
		&c.Address,
		&c.Status,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan customer row: %w", err)
	}
	return &c, nil
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
        INSERT INTO customers (customer_id, customer_code, full_name, email, phone, address, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		customer.CustomerID,
		customer.CustomerCode,
		customer.FullName,
		customer.Email,
		customer.Phone,
		customer.Address,
		customer.Status,
		customer.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("customer code or email taken: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save customer: %w", err)
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1;`
	return scanCustomer(r.Pool.QueryRow(ctx, query, customerID))
}

func (r *PgxCustomerRepository) FindCustomerByCode(ctx context.Context, code string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_code = $1;`
	return scanCustomer(r.Pool.QueryRow(ctx, query, code))
}

func (r *PgxCustomerRepository) FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1;`
	return scanCustomer(r.Pool.QueryRow(ctx, query, email))
}

func (r *PgxCustomerRepository) FindCustomers(ctx context.Context, filter portsrepo.CustomerFilter) ([]domain.Customer, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + customerColumns + ` FROM customers WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.Keyword != "" {
		query += fmt.Sprintf(" AND (full_name ILIKE $%d OR email ILIKE $%d OR customer_code ILIKE $%d)", argPos, argPos, argPos)
		args = append(args, "%"+filter.Keyword+"%")
		argPos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", rows.Err())
	}
	return customers, nil
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
        UPDATE customers
        SET full_name = $1, email = $2, phone = $3, address = $4, status = $5
        WHERE customer_id = $6;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		customer.FullName,
		customer.Email,
		customer.Phone,
		customer.Address,
		customer.Status,
		customer.CustomerID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email taken: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("customer not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1;`, customerID)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("customer not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
