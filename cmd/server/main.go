package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/constructora/cost-api/internal/api"
	"github.com/constructora/cost-api/internal/pkg/config"
	"github.com/constructora/cost-api/internal/pkg/logger"
	"github.com/constructora/cost-api/internal/pkg/store"
	"github.com/constructora/cost-api/internal/pkg/store/xpgx"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()
	defer logger.Sync()

	_ = godotenv.Load()

	cfg, err := config.Init()
	if err != nil {
		logger.Fatal(ctx, err)
	}

	pool, err := xpgx.NewPool(ctx, cfg.ConnectionString)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	// startup only: per-query retries stay forbidden
	err = backoff.Retry(
		func() error { return pool.Ping(ctx) },
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Second), 5),
			ctx,
		),
	)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	svc, err := api.NewAPIService(store.NewStore(pool))
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(cfg.ListenAddr)
	logger.Infof(ctx, "listening on %s", cfg.ListenAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Infof(ctx, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "shutdown: %s", err.Error())
	}
}
