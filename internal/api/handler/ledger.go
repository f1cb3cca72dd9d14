// internal/api/handler/ledger.go
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"balance-ledger/internal/auth"
	"balance-ledger/internal/domain"
	"balance-ledger/internal/logger"
	"balance-ledger/internal/money"
	"balance-ledger/internal/service"
	"balance-ledger/internal/util"
)

// LedgerHandler handles balance ledger HTTP requests.
type LedgerHandler struct {
	service  service.LedgerService
	validate *validator.Validate
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(svc service.LedgerService) *LedgerHandler {
	v := validator.New()
	// Teach the validator to see decimal.Decimal as a number so numeric tags
	// like gt=0 apply. Precision only matters for validation here; the exact
	// decimal value is what reaches the service.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return &LedgerHandler{
		service:  svc,
		validate: v,
	}
}

// amountRequest is the body of both /deposit and /withdraw.
type amountRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required,gt=0"`
}

// balanceResponse is the success body of both /deposit and /withdraw.
type balanceResponse struct {
	Username string          `json:"username"`
	Balance  decimal.Decimal `json:"balance"`
	Message  string          `json:"message"`
}

// Health handles GET /health.
func (h *LedgerHandler) Health(w http.ResponseWriter, r *http.Request) {
	WriteResponse(w, map[string]string{"status": "healthy"}, http.StatusOK)
}

// Index handles GET / and greets the authenticated user.
func (h *LedgerHandler) Index(w http.ResponseWriter, r *http.Request) {
	ident, err := auth.FromContext(r.Context())
	if err != nil {
		WriteError(w, http.StatusUnauthorized, util.ErrUnauthorized.Error())
		return
	}

	WriteResponse(w, fmt.Sprintf("Hello, %s!", ident.Username), http.StatusOK)
}

// Deposit handles POST /deposit.
func (h *LedgerHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, h.service.Deposit, "Successfully deposited %s")
}

// Withdraw handles POST /withdraw.
func (h *LedgerHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, h.service.Withdraw, "Successfully withdrew %s")
}

// apply is the shared deposit/withdraw request path: authenticate, decode,
// validate, run the operation, render the updated balance.
func (h *LedgerHandler) apply(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.User, error),
	messageFormat string,
) {
	ctx := r.Context()

	ident, err := auth.FromContext(ctx)
	if err != nil {
		WriteError(w, http.StatusUnauthorized, util.ErrUnauthorized.Error())
		return
	}

	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		WriteError(w, http.StatusBadRequest, "amount must be greater than zero")
		return
	}

	user, err := op(ctx, ident.UserID, req.Amount)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	WriteResponse(w, balanceResponse{
		Username: user.Username,
		Balance:  money.FromCents(user.Balance),
		Message:  fmt.Sprintf(messageFormat, money.Format(req.Amount)),
	}, http.StatusOK)
}

// respondWithError translates service errors into HTTP error responses.
func (h *LedgerHandler) respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	var insufficient *domain.InsufficientBalanceError

	switch {
	case errors.As(err, &insufficient):
		WriteError(w, http.StatusBadRequest, insufficient.Error())
	case util.IsError(err, util.ErrInvalidInput):
		WriteError(w, http.StatusBadRequest, "amount must be greater than zero")
	case util.IsError(err, util.ErrUserNotFound):
		WriteError(w, http.StatusNotFound, util.ErrUserNotFound.Error())
	case util.IsError(err, util.ErrUnauthorized):
		WriteError(w, http.StatusUnauthorized, util.ErrUnauthorized.Error())
	default:
		l := logger.Ctx(r.Context())
		l.Error().Err(err).Msg("unhandled service error")
		WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
