// internal/api/router_test.go
package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"balance-ledger/internal/api"
	"balance-ledger/internal/api/handler"
	"balance-ledger/internal/auth"
	"balance-ledger/internal/domain"
	"balance-ledger/internal/logger"
	"balance-ledger/internal/money"
	"balance-ledger/internal/util"
)

// MockLedgerService is a mock implementation of service.LedgerService.
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Deposit(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.User, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockLedgerService) Withdraw(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.User, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type testEnv struct {
	service *MockLedgerService
	server  *httptest.Server
	token   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	svc := new(MockLedgerService)
	tokenAuth := auth.NewTokenAuth("test-secret", time.Hour)
	router := api.NewRouter(handler.NewLedgerHandler(svc), tokenAuth, logger.Global())

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	token, err := tokenAuth.Mint(&domain.User{ID: 1, Username: "user_1"})
	require.NoError(t, err)

	return &testEnv{service: svc, server: server, token: token}
}

func (e *testEnv) request(t *testing.T, method, path, body, token string) (*http.Response, map[string]interface{}) {
	t.Helper()

	req, err := http.NewRequest(method, e.server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var decoded map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)

	return resp, decoded
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.request(t, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])
}

func TestIndex(t *testing.T) {
	env := newTestEnv(t)

	t.Run("GreetsAuthenticatedUser", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, env.server.URL+"/", nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+env.token)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var greeting string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&greeting))
		assert.Equal(t, "Hello, user_1!", greeting)
	})

	t.Run("RejectsMissingToken", func(t *testing.T) {
		resp, body := env.request(t, http.MethodGet, "/", "", "")

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "unauthorized", body["error"])
	})

	t.Run("RejectsInvalidToken", func(t *testing.T) {
		resp, _ := env.request(t, http.MethodGet, "/", "", "bogus")

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestDepositEndpoint(t *testing.T) {
	t.Run("Successful", func(t *testing.T) {
		env := newTestEnv(t)
		env.service.On("Deposit", mock.Anything, int64(1), mock.MatchedBy(func(d decimal.Decimal) bool {
			return d.Equal(decimal.RequireFromString("50.00"))
		})).Return(&domain.User{ID: 1, Username: "user_1", Balance: 5000}, nil).Once()

		resp, body := env.request(t, http.MethodPost, "/deposit", `{"amount": 50.00}`, env.token)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "user_1", body["username"])
		assert.Equal(t, "Successfully deposited 50.00", body["message"])

		balance, err := decimal.NewFromString(body["balance"].(string))
		require.NoError(t, err)
		assert.True(t, money.FromCents(5000).Equal(balance))

		env.service.AssertExpectations(t)
	})

	t.Run("RejectsNonPositiveAmount", func(t *testing.T) {
		env := newTestEnv(t)

		for _, payload := range []string{`{"amount": 0}`, `{"amount": -5}`, `{}`} {
			resp, body := env.request(t, http.MethodPost, "/deposit", payload, env.token)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "payload %s", payload)
			assert.Equal(t, "amount must be greater than zero", body["error"])
		}

		env.service.AssertNotCalled(t, "Deposit", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("RejectsMalformedBody", func(t *testing.T) {
		env := newTestEnv(t)

		resp, body := env.request(t, http.MethodPost, "/deposit", `{"amount": "abc"}`, env.token)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "invalid request body", body["error"])
	})

	t.Run("UserNotFound", func(t *testing.T) {
		env := newTestEnv(t)
		env.service.On("Deposit", mock.Anything, int64(1), mock.Anything).
			Return(nil, util.ErrUserNotFound).Once()

		resp, body := env.request(t, http.MethodPost, "/deposit", `{"amount": 10}`, env.token)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "user not found", body["error"])
	})

	t.Run("RejectsUnauthenticated", func(t *testing.T) {
		env := newTestEnv(t)

		resp, _ := env.request(t, http.MethodPost, "/deposit", `{"amount": 10}`, "")

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		env.service.AssertNotCalled(t, "Deposit", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestWithdrawEndpoint(t *testing.T) {
	t.Run("Successful", func(t *testing.T) {
		env := newTestEnv(t)
		env.service.On("Withdraw", mock.Anything, int64(1), mock.Anything).
			Return(&domain.User{ID: 1, Username: "user_1", Balance: 0}, nil).Once()

		resp, body := env.request(t, http.MethodPost, "/withdraw", `{"amount": 50.00}`, env.token)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Successfully withdrew 50.00", body["message"])

		balance, err := decimal.NewFromString(body["balance"].(string))
		require.NoError(t, err)
		assert.True(t, balance.IsZero())
	})

	t.Run("InsufficientBalance", func(t *testing.T) {
		env := newTestEnv(t)
		env.service.On("Withdraw", mock.Anything, int64(1), mock.Anything).
			Return(nil, &domain.InsufficientBalanceError{Current: money.FromCents(5000)}).Once()

		resp, body := env.request(t, http.MethodPost, "/withdraw", `{"amount": 75.00}`, env.token)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "insufficient balance: current balance 50.00", body["error"])
	})
}
