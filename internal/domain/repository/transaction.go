// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to group multi-step writes into one atomic
// unit without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so every operation inside one Execute callback shares the
// same database connection.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// AddressRepo returns an AddressRepository bound to the current transaction.
	AddressRepo() AddressRepository

	// ProductRepo returns a ProductRepository bound to the current transaction.
	ProductRepo() ProductRepository

	// CartRepo returns a CartRepository bound to the current transaction.
	CartRepo() CartRepository

	// CouponRepo returns a CouponRepository bound to the current transaction.
	CouponRepo() CouponRepository

	// OrderRepo returns an OrderRepository bound to the current transaction.
	OrderRepo() OrderRepository

	// TicketRepo returns a TicketRepository bound to the current transaction.
	TicketRepo() TicketRepository

	// BulkOrderRepo returns a BulkOrderRepository bound to the current transaction.
	BulkOrderRepo() BulkOrderRepository

	// SubscriberRepo returns a SubscriberRepository bound to the current transaction.
	SubscriberRepo() SubscriberRepository

	// SettingsRepo returns a SettingsRepository bound to the current transaction.
	SettingsRepo() SettingsRepository
}

// ListParams carries the common list query parameters every collection
// endpoint accepts.
type ListParams struct {
	Page   int    // 1-based page number; values below 1 are treated as 1.
	Limit  int    // Page size; values below 1 fall back to DefaultPageSize.
	Search string // Optional case-insensitive substring filter.
	Status string // Optional status filter against the resource's enum.
}

// DefaultPageSize is used when a list request does not specify a limit.
const DefaultPageSize = 20

// Normalize clamps paging values to sane bounds.
func (p ListParams) Normalize() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}

	return p
}

// Offset returns the row offset for the normalized page.
func (p ListParams) Offset() int {
	n := p.Normalize()

	return (n.Page - 1) * n.Limit
}
