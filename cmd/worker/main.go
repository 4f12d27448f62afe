package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/adapters/event"
	"github.com/khoahotran/portfolio-api/adapters/persistence"
	warmupUC "github.com/khoahotran/portfolio-api/internal/application/usecase/warmup"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/metrics"
)

const consumerGroup = "portfolio-cache-warmer"

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	appLogger.Info("Starting Portfolio Worker...", zap.String("group", consumerGroup))

	if cfg.Redis.Addr == "" {
		appLogger.Fatal("Worker needs REDIS_ADDR, there is no cache to warm", nil)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Document store behind the shared cache
	backend, err := persistence.OpenDocumentStore(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot open document store", err)
	}
	redisClient, err := persistence.NewRedisClient(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Redis", err)
	}
	defer redisClient.Close()

	store := persistence.Decorate(backend, redisClient, cfg, appLogger, metrics.NewCollector("portfolio_worker"))
	defer store.Close()

	// Kafka Consumer
	consumer, err := event.NewKafkaConsumer(cfg, consumerGroup, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot init Kafka consumer", err)
	}
	defer consumer.Close()

	warmCache := warmupUC.NewWarmCacheUseCase(store, appLogger)
	if err := consumer.Run(ctx, warmCache.Execute); err != nil {
		appLogger.Error("Worker stopped", err)
		return
	}
	appLogger.Info("Worker exited")
}
