// Package memory provides the in-memory AccountRepository implementation.
// The store is the only cross-request mutable state in the process; a
// read-write mutex keeps the at-most-one-mutator invariant under Fiber's
// concurrent handlers.
package memory

import (
	"fmt"
	"sync"

	"github.com/corebank/accounts-api/pkg/domain"
	"github.com/shopspring/decimal"
)

// AccountRepository keeps accounts in insertion order. Ids are assigned from
// a monotonic counter rather than the collection size, so ids are never
// reused after a delete.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts []*domain.Account
	nextID   int64
}

// NewAccountRepository creates an empty store.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{}
}

// NewSeededAccountRepository creates a store preloaded with the bootstrap
// dataset the service ships with.
func NewSeededAccountRepository() *AccountRepository {
	r := NewAccountRepository()
	for _, a := range []*domain.Account{
		{
			CustomerID:  "123",
			Number:      "9876543210123456",
			Type:        "Savings",
			Currency:    "USD",
			Balance:     decimal.NewFromFloat(2500.00),
			Status:      "Active",
			OpeningDate: "2022-01-15",
		},
		{
			CustomerID:  "123",
			Number:      "1234567890123456",
			Type:        "Current",
			Currency:    "USD",
			Balance:     decimal.NewFromFloat(4800.00),
			Status:      "Dormant",
			OpeningDate: "2021-08-10",
		},
	} {
		if _, err := r.Create(a); err != nil {
			panic(fmt.Sprintf("seeding account store: %v", err))
		}
	}
	return r
}

// Get returns a snapshot of the account with the given id, or
// domain.ErrAccountNotFound.
func (r *AccountRepository) Get(id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

// ListByCustomer returns snapshots of all accounts owned by the customer, in
// insertion order. The result is empty both for unknown customers and for
// customers without accounts.
func (r *AccountRepository) ListByCustomer(customerID string) []*domain.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Account
	for _, a := range r.accounts {
		if a.CustomerID == customerID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out
}

// List returns snapshots of every account in insertion order.
func (r *AccountRepository) List() []*domain.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		cp := *a
		out = append(out, &cp)
	}
	return out
}

// Create assigns the next id to the account, appends it to the store and
// returns the assigned id.
func (r *AccountRepository) Create(a *domain.Account) (string, error) {
	if a == nil {
		return "", fmt.Errorf("create: nil account")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	cp := *a
	cp.ID = fmt.Sprintf("%03d", r.nextID)
	r.accounts = append(r.accounts, &cp)
	a.ID = cp.ID
	return cp.ID, nil
}

// Delete removes the account with the given id and reports whether it was
// present. A miss leaves the store untouched.
func (r *AccountRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.accounts {
		if a.ID == id {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return true
		}
	}
	return false
}
