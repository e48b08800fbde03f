package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/stackforge-labs/webapp_suite/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository to the shared
// connection pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		RefreshTokenRepo: newPgxRefreshTokenRepository(dbPool),
		CustomerRepo:     newPgxCustomerRepository(dbPool),
		ProductRepo:      newPgxProductRepository(dbPool),
		StudentRepo:      newPgxStudentRepository(dbPool),
	}
}
