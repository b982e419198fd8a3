package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// CustomerRepo returns a CustomerRepository bound to the current transaction.
	CustomerRepo() CustomerRepository

	// VisitRepo returns a VisitRepository bound to the current transaction.
	VisitRepo() VisitRepository

	// AnalyticsRepo returns an AnalyticsRepository bound to the current transaction.
	AnalyticsRepo() AnalyticsRepository

	// BusinessRepo returns a BusinessRepository bound to the current transaction.
	BusinessRepo() BusinessRepository

	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// CampaignRepo returns a CampaignRepository bound to the current transaction.
	CampaignRepo() CampaignRepository

	// MessageRepo returns a MessageRepository bound to the current transaction.
	MessageRepo() MessageRepository
}
