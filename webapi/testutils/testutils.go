// Package testutils builds fully wired Fiber apps for HTTP-level tests.
package testutils

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/corebank/accounts-api/infra/repository/memory"
	"github.com/corebank/accounts-api/pkg/config"
	accountsvc "github.com/corebank/accounts-api/pkg/service/account"
	"github.com/corebank/accounts-api/webapi"
	accountweb "github.com/corebank/accounts-api/webapi/account"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// APIKey is the key NewTestApp configures for the API-key gate.
const APIKey = "TESTKEY1234567890"

// TestConfig returns an App config suitable for tests: gate key set and a
// rate limit high enough to stay out of the way.
func TestConfig() *config.App {
	return &config.App{
		Env:       "test",
		Auth:      config.AuthConfig{APIKey: APIKey},
		RateLimit: config.RateLimitConfig{MaxRequests: 10000, Window: time.Minute},
	}
}

// NewTestApp wires a complete app over a seeded in-memory store and returns
// both, so tests can assert against store state directly.
func NewTestApp(t *testing.T) (*fiber.App, *memory.AccountRepository) {
	t.Helper()
	repo := memory.NewSeededAccountRepository()
	svc := accountsvc.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	app := webapi.NewApp(TestConfig())
	accountweb.Routes(app, svc)
	return app, repo
}

// MakeRequest performs a request against the app. An empty apiKey leaves the
// X-API-Key header unset.
func MakeRequest(t *testing.T, app *fiber.App, method, target, body, apiKey string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}
