package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ayoubrebai/autoparts-backend/internal/cron"
	"github.com/ayoubrebai/autoparts-backend/internal/orders"
	"github.com/ayoubrebai/autoparts-backend/pkg/config"
	"github.com/ayoubrebai/autoparts-backend/pkg/db"
	"github.com/ayoubrebai/autoparts-backend/pkg/logger"
	"github.com/ayoubrebai/autoparts-backend/pkg/metrics"
	"github.com/ayoubrebai/autoparts-backend/pkg/migrate"
	"github.com/ayoubrebai/autoparts-backend/pkg/redis"
)

const lockScope = "audit-worker"

func main() {
	logg := logger.New(logger.Options{ServiceName: "audit-worker"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	cfg.Service.Kind = "audit-worker"

	logg = logger.New(logger.Options{
		ServiceName: "audit-worker",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	jobMetrics := metrics.NewJobMetrics(prometheus.DefaultRegisterer)
	lock, err := cron.NewRedisLock(redisClient, redisClient.LockKey(lockScope), cfg.Audit.LockTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create worker lock", err)
		os.Exit(1)
	}

	reconcileJob, err := cron.NewReconcileJob(cron.ReconcileJobParams{
		Logger: logg,
		Orders: orders.NewRepository(dbClient.DB()),
		Limit:  cfg.Analytics.BulkFetchLimit,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create reconcile job", err)
		os.Exit(1)
	}

	registry := cron.NewRegistry()
	registry.Register(reconcileJob)

	service, err := cron.NewService(cron.ServiceParams{
		Logger:   logg,
		Registry: registry,
		Lock:     lock,
		Metrics:  jobMetrics,
		Interval: cfg.Audit.Interval,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create worker service", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":         cfg.App.Env,
		"serviceKind": cfg.Service.Kind,
	})
	logg.Info(ctx, "starting audit worker")

	if err := service.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logg.Error(ctx, "audit worker stopped unexpectedly", err)
		os.Exit(1)
	}

	logg.Info(ctx, "audit worker shutting down gracefully")
}
