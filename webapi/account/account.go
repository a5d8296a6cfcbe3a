// Package account exposes the /accounts HTTP surface: lookup by id,
// filtered and paginated listing by customer, creation and deletion.
package account

import (
	"errors"
	"strconv"

	"github.com/corebank/accounts-api/pkg/domain"
	accountsvc "github.com/corebank/accounts-api/pkg/service/account"
	"github.com/corebank/accounts-api/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Listing defaults applied when the caller omits pagination parameters.
const (
	defaultPageSize   = 10
	defaultPageNumber = 1
	maxPageSize       = 100
)

// Routes registers the account endpoints.
//
// Routes:
//   - GET    /accounts             : Look up one account or list a customer's accounts.
//   - POST   /accounts             : Create a new account.
//   - GET    /accounts/all         : List every account (admin/testing).
//   - DELETE /accounts/:accountId  : Remove an account.
func Routes(app fiber.Router, svc *accountsvc.Service) {
	app.Get("/accounts", Find(svc))
	app.Post("/accounts", Create(svc))
	app.Get("/accounts/all", ListAll(svc))
	app.Delete("/accounts/:accountId", Delete(svc))
}

// queryError is a failed validation rule: a fixed status, a stable code and
// a human message.
type queryError struct {
	status  int
	code    string
	message string
}

// listQuery holds the outcome of the validation stage: either a single
// account lookup (accountID set) or typed listing parameters with defaults
// applied.
type listQuery struct {
	accountID string
	params    accountsvc.ListParams
}

// parseListQuery validates the query parameters of GET /accounts in the
// documented rule order; the first failing rule wins.
func parseListQuery(c *fiber.Ctx) (*listQuery, *queryError) {
	customerID := c.Query("customerId")
	accountID := c.Query("accountId")

	if customerID == "" && accountID == "" {
		return nil, &queryError{fiber.StatusBadRequest, webapi.ErrCodeMissingParam,
			"Missing customerId or accountId"}
	}

	pageSize := defaultPageSize
	if raw := c.Query("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxPageSize {
			return nil, &queryError{fiber.StatusBadRequest, webapi.ErrCodeInvalidParam,
				"Invalid pageSize (1-100 allowed)"}
		}
		pageSize = n
	}

	pageNumber := defaultPageNumber
	if raw := c.Query("pageNumber"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, &queryError{fiber.StatusBadRequest, webapi.ErrCodeInvalidParam,
				"Invalid pageNumber (must be >= 1)"}
		}
		pageNumber = n
	}

	if customerID != "" {
		if _, err := strconv.ParseFloat(customerID, 64); err != nil {
			return nil, &queryError{fiber.StatusBadRequest, webapi.ErrCodeInvalidParam,
				"customerId must be numeric"}
		}
	}

	if accountID != "" {
		// accountId must be a string. Query decoding already guarantees
		// this; the rule survives from the API contract as a checked slot
		// in the ordering.
		_ = accountID
	}

	return &listQuery{
		accountID: accountID,
		params: accountsvc.ListParams{
			CustomerID: customerID,
			Type:       c.Query("accountType"),
			Status:     c.Query("status"),
			PageSize:   pageSize,
			PageNumber: pageNumber,
		},
	}, nil
}

// Find handles GET /accounts. With accountId it returns the single masked
// projection; with customerId it returns one filtered, paginated page and
// reports the post-filter total both in the body and in the X-Total-Count
// header. Any failure is answered with the coded error envelope; nothing
// escapes unformatted.
func Find(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Fault-injection hook: short-circuits before any validation.
		if c.Query("force500") == "true" {
			return webapi.ErrorResponseJSON(c, fiber.StatusInternalServerError,
				webapi.ErrCodeInternal, "Internal Server Error")
		}

		q, qerr := parseListQuery(c)
		if qerr != nil {
			return webapi.ErrorResponseJSON(c, qerr.status, qerr.code, qerr.message)
		}

		if q.accountID != "" {
			a, err := svc.Get(q.accountID)
			if err != nil {
				return webapi.ErrorResponseJSON(c, fiber.StatusNotFound,
					webapi.ErrCodeAccountNotFound, "Account not found")
			}
			return c.Status(fiber.StatusOK).JSON(newAccountResponse(a))
		}

		page, err := svc.Find(q.params)
		if err != nil {
			if errors.Is(err, domain.ErrCustomerNotFound) {
				return webapi.ErrorResponseJSON(c, fiber.StatusNotFound,
					webapi.ErrCodeCustomerNotFound, "Customer not found or has no accounts")
			}
			log.Errorf("account listing failed: %v", err)
			return webapi.ErrorResponseJSON(c, fiber.StatusInternalServerError,
				webapi.ErrCodeInternal, "Internal Server Error")
		}

		c.Set("X-Total-Count", strconv.Itoa(page.TotalCount))
		return c.Status(fiber.StatusOK).JSON(newListResponse(page))
	}
}

// Create handles POST /accounts. All fields are required; a missing one
// yields a 400 with the simple error envelope.
func Create(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := webapi.BindAndValidate[CreateAccountRequest](c, "Missing required account fields")
		if input == nil {
			return err // error response already written
		}
		a, err := svc.Create(input.ToDomain())
		if err != nil {
			log.Errorf("failed to create account: %v", err)
			return webapi.SimpleErrorJSON(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		return c.Status(fiber.StatusCreated).JSON(CreateResponse{
			Message: "Account created",
			Account: newOwnedAccountResponse(a),
		})
	}
}

// ListAll handles GET /accounts/all, returning every account in the superset
// projection (customerId retained, account number still masked).
func ListAll(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts := svc.ListAll()
		out := make([]OwnedAccountResponse, 0, len(accounts))
		for _, a := range accounts {
			out = append(out, newOwnedAccountResponse(a))
		}
		return c.Status(fiber.StatusOK).JSON(out)
	}
}

// Delete handles DELETE /accounts/:accountId.
func Delete(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("accountId")
		if err := svc.Delete(id); err != nil {
			return webapi.SimpleErrorJSON(c, fiber.StatusNotFound, "Account not found")
		}
		return c.Status(fiber.StatusOK).JSON(MessageResponse{Message: "Account removed"})
	}
}
