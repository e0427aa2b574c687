package repository

import "context"

// RepositoryFactory creates repository instances bound to a single database
// transaction. It is handed to the TransactionManager's callback so multi-step
// operations (the check-and-decrement plus consumption insert) commit or roll
// back as one unit.
type RepositoryFactory interface {
	NewPinRepository() PinRepository
	NewConsumptionRepository() ConsumptionRepository
	NewLocationGroupRepository() LocationGroupRepository
}

// TransactionManager runs a function within one database transaction.
type TransactionManager interface {
	// Execute begins a transaction, calls fn with a factory bound to it, and
	// commits when fn returns nil or rolls back when it returns an error.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
