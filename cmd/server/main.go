package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/hydra-paging/internal/config"
	"github.com/maxviazov/hydra-paging/internal/handler"
	"github.com/maxviazov/hydra-paging/internal/logger"
	"github.com/maxviazov/hydra-paging/internal/paging"
	"github.com/maxviazov/hydra-paging/internal/repository"
	"github.com/maxviazov/hydra-paging/internal/repository/postgres"
	"github.com/maxviazov/hydra-paging/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config loading failed: %v", err)
	}

	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("logger initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, err := repository.New(ctx, &cfg.Postgres, &appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer repo.Close()

	eventSvc, err := service.NewEventService(
		postgres.NewEventRepository(repo.Pool()),
		paging.Settings{
			DefaultItemsPerPage: cfg.Paging.DefaultItemsPerPage,
			MaxItemsPerPage:     cfg.Paging.MaxItemsPerPage,
			ZeroBased:           cfg.Paging.ZeroBased,
		},
		appLogger,
	)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("event service setup failed")
	}

	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := handler.NewEngine(appLogger)
	handler.Register(r, postgres.NewPinger(repo.Pool()), eventSvc, handler.LinkSettings{
		PageParam:         cfg.Paging.PageParam,
		ItemsPerPageParam: cfg.Paging.ItemsPerPageParam,
		TrustForwarded:    cfg.Paging.TrustForwarded,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		appLogger.Info().Str("addr", srv.Addr).Bool("zero_based", cfg.Paging.ZeroBased).Msg("service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error().Err(err).Msg("http server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
