// Package account provides the business logic for account lookup, filtered
// and paginated listing, creation and deletion on top of the account
// repository.
package account

import (
	"log/slog"

	"github.com/corebank/accounts-api/pkg/domain"
	"github.com/corebank/accounts-api/pkg/repository"
)

// Service executes account queries and mutations against the repository.
type Service struct {
	repo   repository.AccountRepository
	logger *slog.Logger
}

// NewService creates a Service backed by the given repository.
func NewService(repo repository.AccountRepository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListParams holds the validated, typed parameters of a listing request.
// PageSize and PageNumber carry their defaults already applied.
type ListParams struct {
	CustomerID string
	Type       string
	Status     string
	PageSize   int
	PageNumber int
}

// Page is one page of a customer's accounts after filtering. TotalCount is
// the number of accounts after filters were applied but before pagination.
type Page struct {
	TotalCount int
	PageSize   int
	PageNumber int
	Accounts   []*domain.Account
}

// Get returns the account with the given id, or domain.ErrAccountNotFound.
func (s *Service) Get(id string) (*domain.Account, error) {
	return s.repo.Get(id)
}

// Find returns one page of the customer's accounts, narrowed by the optional
// type and status filters. A customer with no accounts at all yields
// domain.ErrCustomerNotFound; a page past the end of a non-empty result set
// is an empty page, not an error.
func (s *Service) Find(p ListParams) (*Page, error) {
	accounts := s.repo.ListByCustomer(p.CustomerID)
	if len(accounts) == 0 {
		return nil, domain.ErrCustomerNotFound
	}

	if p.Type != "" {
		accounts = filter(accounts, func(a *domain.Account) bool { return a.Type == p.Type })
	}
	if p.Status != "" {
		accounts = filter(accounts, func(a *domain.Account) bool { return a.Status == p.Status })
	}

	totalCount := len(accounts)
	start := (p.PageNumber - 1) * p.PageSize
	end := start + p.PageSize
	if start > totalCount {
		start = totalCount
	}
	if end > totalCount {
		end = totalCount
	}

	s.logger.Debug("account listing",
		"customer_id", p.CustomerID,
		"total_count", totalCount,
		"page_size", p.PageSize,
		"page_number", p.PageNumber,
	)
	return &Page{
		TotalCount: totalCount,
		PageSize:   p.PageSize,
		PageNumber: p.PageNumber,
		Accounts:   accounts[start:end],
	}, nil
}

// ListAll returns every account in insertion order.
func (s *Service) ListAll() []*domain.Account {
	return s.repo.List()
}

// Create stores a new account and returns it with its assigned id.
func (s *Service) Create(a *domain.Account) (*domain.Account, error) {
	id, err := s.repo.Create(a)
	if err != nil {
		s.logger.Error("failed to create account", "error", err)
		return nil, err
	}
	s.logger.Info("account created", "account_id", id, "customer_id", a.CustomerID)
	created, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Delete removes the account with the given id, or returns
// domain.ErrAccountNotFound when no such account exists.
func (s *Service) Delete(id string) error {
	if !s.repo.Delete(id) {
		return domain.ErrAccountNotFound
	}
	s.logger.Info("account removed", "account_id", id)
	return nil
}

func filter(accounts []*domain.Account, keep func(*domain.Account) bool) []*domain.Account {
	out := accounts[:0:0]
	for _, a := range accounts {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}
