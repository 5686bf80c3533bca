package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs fn within one database transaction.
	// If fn returns an error or ctx is cancelled, the transaction is rolled back. Otherwise it is committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to a single transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	AuthRepo() AuthRepository
	CodeRepo() CodeRepository
	LedgerRepo() LedgerRepository
	DishRepo() DishRepository
	OrderRepo() OrderRepository
	SuggestionRepo() SuggestionRepository
}
