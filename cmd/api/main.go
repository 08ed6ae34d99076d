package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/ghstudios/mhgen-catalog/api/controllers"
	"github.com/ghstudios/mhgen-catalog/api/routes"
	"github.com/ghstudios/mhgen-catalog/internal/catalog"
	"github.com/ghstudios/mhgen-catalog/internal/placement"
	"github.com/ghstudios/mhgen-catalog/internal/wishlist"
	"github.com/ghstudios/mhgen-catalog/pkg/config"
	"github.com/ghstudios/mhgen-catalog/pkg/db"
	"github.com/ghstudios/mhgen-catalog/pkg/logger"
	"github.com/ghstudios/mhgen-catalog/pkg/metrics"
	"github.com/ghstudios/mhgen-catalog/pkg/migrate"
	"github.com/ghstudios/mhgen-catalog/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbClient, err := db.New(ctx, cfg.DB, cfg.FeatureFlags, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		logg.Error(ctx, "failed to run dev migrations", err)
		os.Exit(1)
	}

	readiness := map[string]controllers.Pinger{"db": dbClient, "redis": nil}
	var (
		idempotencyStore redis.IdempotencyStore
		guard            placement.Guard = placement.NopGuard{}
	)
	if cfg.Redis.Enabled() {
		redisClient, err := redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			logg.Error(ctx, "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()

		redisGuard, err := placement.NewRedisGuard(redisClient, cfg.Placement.InFlightTTL)
		if err != nil {
			logg.Error(ctx, "failed to create placement guard", err)
			os.Exit(1)
		}
		readiness["redis"] = redisClient
		idempotencyStore = redisClient
		guard = redisGuard
	} else {
		logg.Warn(ctx, "redis not configured; in-flight guard and idempotency replay disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	placementMetrics := metrics.NewPlacementMetrics(registry)

	catalogService, err := catalog.NewService(catalog.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(ctx, "failed to create catalog service", err)
		os.Exit(1)
	}
	wishlistService, err := wishlist.NewService(wishlist.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(ctx, "failed to create wishlist service", err)
		os.Exit(1)
	}
	store, err := wishlist.NewDatastore(dbClient)
	if err != nil {
		logg.Error(ctx, "failed to create placement datastore", err)
		os.Exit(1)
	}
	placementService, err := placement.NewService(placement.ServiceParams{
		Store:           store,
		Logger:          logg,
		Metrics:         placementMetrics,
		ReportAllErrors: cfg.Placement.ReportAllErrors,
	})
	if err != nil {
		logg.Error(ctx, "failed to create placement service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx = logg.WithFields(ctx, map[string]any{
		"env":    cfg.App.Env,
		"addr":   addr,
		"driver": dbClient.Driver(),
	})

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			readiness,
			catalogService,
			wishlistService,
			placementService,
			guard,
			placementMetrics,
			idempotencyStore,
			promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logg.Info(gctx, "starting api server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()
		logg.Info(gctx, "shutting down api server")
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
