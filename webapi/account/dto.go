package account

import (
	"github.com/corebank/accounts-api/pkg/domain"
	accountsvc "github.com/corebank/accounts-api/pkg/service/account"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest is the body of POST /accounts. Every field is
// required; Balance is a pointer so an explicit zero passes while a missing
// or null balance is rejected.
type CreateAccountRequest struct {
	CustomerID    string   `json:"customerId" validate:"required"`
	AccountNumber string   `json:"accountNumber" validate:"required"`
	AccountType   string   `json:"accountType" validate:"required"`
	Currency      string   `json:"currency" validate:"required"`
	Balance       *float64 `json:"balance" validate:"required"`
	Status        string   `json:"status" validate:"required"`
	OpeningDate   string   `json:"openingDate" validate:"required"`
}

// ToDomain maps the request to a domain account. The store assigns the id.
func (r *CreateAccountRequest) ToDomain() *domain.Account {
	return &domain.Account{
		CustomerID:  r.CustomerID,
		Number:      r.AccountNumber,
		Type:        r.AccountType,
		Currency:    r.Currency,
		Balance:     decimal.NewFromFloat(*r.Balance),
		Status:      r.Status,
		OpeningDate: r.OpeningDate,
	}
}

// BalanceResponse pairs an amount with its currency; balances never travel
// without one.
type BalanceResponse struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// AccountResponse is the masked projection used by the single-account and
// filtered-listing paths. It deliberately omits customerId.
type AccountResponse struct {
	AccountID     string          `json:"accountId"`
	AccountNumber string          `json:"accountNumber"`
	AccountType   string          `json:"accountType"`
	Currency      string          `json:"currency"`
	Balance       BalanceResponse `json:"balance"`
	Status        string          `json:"status"`
	OpeningDate   string          `json:"openingDate"`
}

// OwnedAccountResponse is the superset projection used by the create and
// list-all paths; unlike AccountResponse it retains customerId. The two
// projections coexist on purpose, callers may depend on either shape.
type OwnedAccountResponse struct {
	AccountID     string          `json:"accountId"`
	CustomerID    string          `json:"customerId"`
	AccountNumber string          `json:"accountNumber"`
	AccountType   string          `json:"accountType"`
	Currency      string          `json:"currency"`
	Balance       BalanceResponse `json:"balance"`
	Status        string          `json:"status"`
	OpeningDate   string          `json:"openingDate"`
}

// ListResponse wraps one page of the filtered listing. TotalCount repeats
// the X-Total-Count header value.
type ListResponse struct {
	TotalCount int               `json:"totalCount"`
	PageSize   int               `json:"pageSize"`
	PageNumber int               `json:"pageNumber"`
	Accounts   []AccountResponse `json:"accounts"`
}

// CreateResponse is the 201 body of POST /accounts.
type CreateResponse struct {
	Message string               `json:"message"`
	Account OwnedAccountResponse `json:"account"`
}

// MessageResponse carries a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

func newAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     a.ID,
		AccountNumber: domain.MaskNumber(a.Number),
		AccountType:   a.Type,
		Currency:      a.Currency,
		Balance:       BalanceResponse{Amount: a.Balance.InexactFloat64(), Currency: a.Currency},
		Status:        a.Status,
		OpeningDate:   a.OpeningDate,
	}
}

func newOwnedAccountResponse(a *domain.Account) OwnedAccountResponse {
	return OwnedAccountResponse{
		AccountID:     a.ID,
		CustomerID:    a.CustomerID,
		AccountNumber: domain.MaskNumber(a.Number),
		AccountType:   a.Type,
		Currency:      a.Currency,
		Balance:       BalanceResponse{Amount: a.Balance.InexactFloat64(), Currency: a.Currency},
		Status:        a.Status,
		OpeningDate:   a.OpeningDate,
	}
}

func newListResponse(page *accountsvc.Page) ListResponse {
	accounts := make([]AccountResponse, 0, len(page.Accounts))
	for _, a := range page.Accounts {
		accounts = append(accounts, newAccountResponse(a))
	}
	return ListResponse{
		TotalCount: page.TotalCount,
		PageSize:   page.PageSize,
		PageNumber: page.PageNumber,
		Accounts:   accounts,
	}
}
