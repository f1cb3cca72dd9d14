// cmd/seed/main.go
//
// Seeding/reset utility: wipes the users table and creates ten test users
// user_0..user_9 with balances of 0, 100.00, 200.00, ... units. For each
// user it prints a bearer token valid against the same AUTH_SECRET_KEY the
// API server uses.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	app "balance-ledger/internal"
	"balance-ledger/internal/domain"
)

const userCount = 10

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	application := app.New()
	if err := application.Initialize(ctx); err != nil {
		application.Logger.Error().Err(err).Msg("failed to initialize application")
		os.Exit(1)
	}
	defer func() {
		if err := application.Shutdown(context.Background()); err != nil {
			application.Logger.Error().Err(err).Msg("application shutdown failed")
		}
	}()

	if err := seed(ctx, application); err != nil {
		application.Logger.Error().Err(err).Msg("seeding failed")
		os.Exit(1)
	}
}

func seed(ctx context.Context, application *app.Application) error {
	if err := application.Users.DeleteAll(ctx, application.DB); err != nil {
		return err
	}

	for i := 0; i < userCount; i++ {
		user := domain.NewUser(fmt.Sprintf("user_%d", i))
		user.Balance = int64(10000 * i)

		if err := application.Users.Create(ctx, application.DB, user); err != nil {
			return err
		}

		token, err := application.Auth.Mint(user)
		if err != nil {
			return err
		}

		fmt.Printf("%s\tid=%d\tbalance=%d\ttoken=%s\n", user.Username, user.ID, user.Balance, token)
	}

	application.Logger.Info().Int("users", userCount).Msg("seeding complete")

	return nil
}
