// Package repository defines the data access contracts consumed by the
// service layer. Implementations live under infra/repository.
package repository

import "github.com/corebank/accounts-api/pkg/domain"

// AccountRepository defines the interface for account data access operations.
// List and ListByCustomer return accounts in insertion order.
type AccountRepository interface {
	Get(id string) (*domain.Account, error)
	ListByCustomer(customerID string) []*domain.Account
	List() []*domain.Account
	// Create stores the account and returns the id it assigned to it.
	Create(a *domain.Account) (string, error)
	// Delete removes the account with the given id; it reports whether an
	// account was actually removed.
	Delete(id string) bool
}
