// cmd/api/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	app "balance-ledger/internal"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application := app.New()
	if err := application.Initialize(ctx); err != nil {
		application.Logger.Error().Err(err).Msg("failed to initialize application")
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         application.Config.Server.Listen,
		Handler:      application.HTTPHandler,
		ReadTimeout:  application.Config.Server.TimeoutRead,
		WriteTimeout: application.Config.Server.TimeoutWrite,
		IdleTimeout:  application.Config.Server.TimeoutIdle,
	}

	go func() {
		application.Logger.Info().Str("listen_address", server.Addr).Msg("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			application.Logger.Error().Err(err).Msg("HTTP server failed")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	application.Logger.Info().Msg("shutting down HTTP server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		application.Logger.Error().Err(err).Msg("HTTP server shutdown failed")
		os.Exit(1)
	}

	if err := application.Shutdown(shutdownCtx); err != nil {
		application.Logger.Error().Err(err).Msg("application shutdown failed")
		os.Exit(1)
	}

	application.Logger.Info().Msg("application gracefully stopped")
}
