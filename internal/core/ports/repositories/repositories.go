package repositories

// RepositoryProvider bundles every repository implementation so wiring
// stays in one place.
type RepositoryProvider struct {
	UserRepo         UserRepository
	RefreshTokenRepo RefreshTokenRepository
	CustomerRepo     CustomerRepository
	ProductRepo      ProductRepository
	StudentRepo      StudentRepository
}
