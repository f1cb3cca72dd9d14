// internal/app.go
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	"balance-ledger/internal/api"
	"balance-ledger/internal/api/handler"
	"balance-ledger/internal/auth"
	"balance-ledger/internal/config"
	"balance-ledger/internal/logger"
	"balance-ledger/internal/migrations"
	"balance-ledger/internal/repository"
	"balance-ledger/internal/repository/postgres"
	"balance-ledger/internal/service"
	"balance-ledger/pkg/db"
)

// Application holds all the initialized components of the service.
type Application struct {
	Config config.Config
	Logger logger.Logger
	DB     *sqlx.DB

	Users  repository.UserRepository
	Ledger service.LedgerService
	Auth   *auth.TokenAuth

	HTTPHandler http.Handler
}

// New creates an empty Application instance. The logger falls back to the
// global one until Initialize configures it.
func New() *Application {
	return &Application{Logger: logger.Global()}
}

// Initialize wires configuration, logging, storage, the ledger service and
// the HTTP surface together.
func (app *Application) Initialize(ctx context.Context) error {
	cfg := config.New()
	if err := cfg.Load(); err != nil {
		return fmt.Errorf("config load: %w", err)
	}
	app.Config = cfg

	app.Logger = logger.New(cfg.LogVerbose, cfg.LogPretty)

	database, err := db.NewPostgres(db.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	app.DB = database
	app.Logger.Info().Msg("database connection established")

	if err := migrations.Up(database.DB); err != nil {
		return fmt.Errorf("db migrate: %w", err)
	}

	app.Users = postgres.NewUserRepository(database)

	app.Ledger = service.NewLedgerService(
		database,
		app.Users,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)

	app.Auth = auth.NewTokenAuth(cfg.Auth.SecretKey, cfg.Auth.TokenTTL)

	ledgerHandler := handler.NewLedgerHandler(app.Ledger)
	app.HTTPHandler = api.NewRouter(ledgerHandler, app.Auth, app.Logger)
	app.Logger.Info().Msg("HTTP router and handlers initialized")

	return nil
}

// Shutdown gracefully releases application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			return fmt.Errorf("db close: %w", err)
		}
		app.Logger.Info().Msg("database connection closed")
	}
	return nil
}
