package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campushub/resource-gateway/internal/api"
	"github.com/campushub/resource-gateway/internal/infrastructure/backend"
	"github.com/campushub/resource-gateway/internal/infrastructure/config"
	"github.com/campushub/resource-gateway/internal/infrastructure/session"
	"github.com/campushub/resource-gateway/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := session.Connect(ctx, session.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	backendClient := backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, log)

	e := api.NewRouter(cfg, backendClient, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.Backend.BaseURL).Msg("gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
