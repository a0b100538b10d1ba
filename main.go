package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"storefront/internal/backend"
	"storefront/internal/config"
	"storefront/internal/logger"
	"storefront/internal/router"
	"storefront/internal/session"
	"storefront/internal/views"
)

func main() {
	cfg := config.LoadConfig()

	log := logger.InitLogger()
	log.Info().Str("backend", cfg.BackendURL).Msg("Starting storefront")

	renderer, err := views.NewRenderer(log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse templates")
	}

	client := backend.NewClient(cfg.BackendURL, log)
	sessions := session.NewManager(cfg.SessionSecret, log)

	r := router.SetupRouter(client, sessions, renderer, log)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Msgf("Server listening on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info().Msg("Shutdown signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	log.Info().Msg("Server stopped")
}
