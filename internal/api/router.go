// internal/api/router.go
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"balance-ledger/internal/api/handler"
	"balance-ledger/internal/auth"
	"balance-ledger/internal/logger"
)

// DefaultTimeout bounds request handling, including the store transaction.
const DefaultTimeout = 30 * time.Second

// NewRouter sets up and returns a new HTTP router. Everything except /health
// sits behind the auth middleware.
func NewRouter(ledgerHandler *handler.LedgerHandler, resolver auth.Resolver, log logger.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(DefaultTimeout))

	r.Get("/health", ledgerHandler.Health)

	r.Group(func(r chi.Router) {
		r.Use(Authenticate(resolver))

		r.Get("/", ledgerHandler.Index)
		r.Post("/deposit", ledgerHandler.Deposit)
		r.Post("/withdraw", ledgerHandler.Withdraw)
	})

	return r
}
