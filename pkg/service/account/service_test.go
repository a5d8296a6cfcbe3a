package account

import (
	"io"
	"log/slog"
	"testing"

	"github.com/corebank/accounts-api/infra/repository/memory"
	"github.com/corebank/accounts-api/pkg/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, accounts ...*domain.Account) *Service {
	t.Helper()
	repo := memory.NewAccountRepository()
	for _, a := range accounts {
		_, err := repo.Create(a)
		require.NoError(t, err)
	}
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func acct(customerID, accType, status string) *domain.Account {
	return &domain.Account{
		CustomerID:  customerID,
		Number:      "9876543210123456",
		Type:        accType,
		Currency:    "USD",
		Balance:     decimal.NewFromFloat(2500),
		Status:      status,
		OpeningDate: "2022-01-15",
	}
}

func params(customerID string) ListParams {
	return ListParams{CustomerID: customerID, PageSize: 10, PageNumber: 1}
}

func TestGet(t *testing.T) {
	svc := newTestService(t, acct("123", "Savings", "Active"))

	got, err := svc.Get("001")
	require.NoError(t, err)
	assert.Equal(t, "123", got.CustomerID)

	_, err = svc.Get("404")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestFindUnknownCustomer(t *testing.T) {
	svc := newTestService(t, acct("123", "Savings", "Active"))

	_, err := svc.Find(params("999"))
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestFindFilters(t *testing.T) {
	svc := newTestService(t,
		acct("123", "Savings", "Active"),
		acct("123", "Current", "Dormant"),
	)

	t.Run("no filters returns all", func(t *testing.T) {
		page, err := svc.Find(params("123"))
		require.NoError(t, err)
		assert.Equal(t, 2, page.TotalCount)
		assert.Len(t, page.Accounts, 2)
	})

	t.Run("filter by type", func(t *testing.T) {
		p := params("123")
		p.Type = "Savings"
		page, err := svc.Find(p)
		require.NoError(t, err)
		assert.Equal(t, 1, page.TotalCount)
		require.Len(t, page.Accounts, 1)
		assert.Equal(t, "001", page.Accounts[0].ID)
	})

	t.Run("filter by status", func(t *testing.T) {
		p := params("123")
		p.Status = "Dormant"
		page, err := svc.Find(p)
		require.NoError(t, err)
		assert.Equal(t, 1, page.TotalCount)
		require.Len(t, page.Accounts, 1)
		assert.Equal(t, "002", page.Accounts[0].ID)
	})

	t.Run("filters combine to empty page", func(t *testing.T) {
		p := params("123")
		p.Type = "Savings"
		p.Status = "Dormant"
		page, err := svc.Find(p)
		require.NoError(t, err)
		assert.Equal(t, 0, page.TotalCount)
		assert.Empty(t, page.Accounts)
	})
}

func TestFindPagination(t *testing.T) {
	svc := newTestService(t,
		acct("123", "Savings", "Active"),
		acct("123", "Current", "Dormant"),
	)

	t.Run("second page of size one", func(t *testing.T) {
		p := params("123")
		p.PageSize = 1
		p.PageNumber = 2
		page, err := svc.Find(p)
		require.NoError(t, err)
		assert.Equal(t, 2, page.TotalCount)
		require.Len(t, page.Accounts, 1)
		assert.Equal(t, "002", page.Accounts[0].ID)
	})

	t.Run("page past the end is empty, not an error", func(t *testing.T) {
		p := params("123")
		p.PageSize = 10
		p.PageNumber = 5
		page, err := svc.Find(p)
		require.NoError(t, err)
		assert.Equal(t, 2, page.TotalCount)
		assert.Empty(t, page.Accounts)
	})

	t.Run("total count reflects the filtered set", func(t *testing.T) {
		p := params("123")
		p.Type = "Savings"
		p.PageSize = 1
		p.PageNumber = 1
		page, err := svc.Find(p)
		require.NoError(t, err)
		assert.Equal(t, 1, page.TotalCount)
	})
}

func TestFindIsIdempotent(t *testing.T) {
	svc := newTestService(t,
		acct("123", "Savings", "Active"),
		acct("123", "Current", "Dormant"),
	)

	first, err := svc.Find(params("123"))
	require.NoError(t, err)
	second, err := svc.Find(params("123"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCreateThenGet(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(acct("77", "Savings", "Active"))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestDelete(t *testing.T) {
	svc := newTestService(t, acct("123", "Savings", "Active"))

	require.NoError(t, svc.Delete("001"))
	_, err := svc.Get("001")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	assert.ErrorIs(t, svc.Delete("001"), domain.ErrAccountNotFound)
	assert.Empty(t, svc.ListAll(), "missed delete must not mutate the store")
}
