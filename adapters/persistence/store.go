package persistence

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/internal/domain/document"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/metrics"
)

// OpenDocumentStore connects the backend selected by DB_DRIVER and prepares
// its schema. The caller owns the returned store and must Close it.
func OpenDocumentStore(ctx context.Context, cfg config.Config, log logger.Logger) (document.Store, error) {
	switch cfg.DB.Driver {
	case config.DriverPostgres, "":
		dsn, err := PostgresDSN(cfg)
		if err != nil {
			return nil, err
		}
		if err := RunMigrations(dsn, log); err != nil {
			return nil, err
		}
		pool, err := NewPostgresPool(ctx, dsn, log)
		if err != nil {
			return nil, err
		}
		return NewPostgresDocumentStore(pool, log), nil

	case config.DriverDynamoDB:
		client, err := NewDynamoDBClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		table := DynamoTableName(cfg)
		if err := EnsureDynamoTable(ctx, client, table, log); err != nil {
			return nil, err
		}
		log.Info("Connect DynamoDB successfully.", zap.String("table", table))
		return NewDynamoDocumentStore(client, table, log), nil

	case config.DriverMemory:
		log.Warn("Using in-memory document store, data is lost on exit")
		return NewMemoryDocumentStore(), nil
	}

	return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DB.Driver)
}

// Decorate wraps a backend with instrumentation and, when rdb is not nil, the
// redis read-through cache.
func Decorate(store document.Store, rdb *redis.Client, cfg config.Config, log logger.Logger, m *metrics.Collector) document.Store {
	decorated := NewInstrumentedDocumentStore(store, m, log)
	if rdb != nil {
		decorated = NewCachedDocumentStore(decorated, rdb, cfg.Redis.TTL, log, m)
	}
	return decorated
}
