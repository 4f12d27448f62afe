package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/domain/document"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/metrics"
)

const cacheKeyPrefix = "portfolio:doc:"

// cachedDocumentStore is a read-through redis cache in front of another store.
// Replace writes the new document through to redis after the backend write
// lands, and a miss only fills the key with SET NX, so a fill started before a
// write can never overwrite that write's copy. Redis failures are logged and
// the request falls through to the wrapped store.
type cachedDocumentStore struct {
	next    document.Store
	rdb     *redis.Client
	ttl     time.Duration
	logger  logger.Logger
	metrics *metrics.Collector
}

func NewCachedDocumentStore(next document.Store, rdb *redis.Client, ttl time.Duration, log logger.Logger, m *metrics.Collector) document.Store {
	return &cachedDocumentStore{next: next, rdb: rdb, ttl: ttl, logger: log, metrics: m}
}

func cacheKey(collection, key string) string {
	return cacheKeyPrefix + collection + ":" + key
}

func (s *cachedDocumentStore) Get(ctx context.Context, collection, key string) (json.RawMessage, error) {
	ck := cacheKey(collection, key)

	cached, err := s.rdb.Get(ctx, ck).Bytes()
	if err == nil {
		s.metrics.CacheHits.Inc()
		return cached, nil
	}
	if !errors.Is(err, redis.Nil) {
		s.logger.Warn("Document cache read failed", zap.String("key", ck), zap.Error(err))
	}
	s.metrics.CacheMisses.Inc()

	doc, err := s.next.Get(ctx, collection, key)
	if err != nil {
		return nil, err
	}

	if err := s.rdb.SetNX(ctx, ck, []byte(doc), s.ttl).Err(); err != nil {
		s.logger.Warn("Document cache fill failed", zap.String("key", ck), zap.Error(err))
	}
	return doc, nil
}

func (s *cachedDocumentStore) Replace(ctx context.Context, collection, key string, doc json.RawMessage) error {
	if err := s.next.Replace(ctx, collection, key, doc); err != nil {
		return err
	}

	ck := cacheKey(collection, key)
	if err := s.rdb.Set(ctx, ck, []byte(doc), s.ttl).Err(); err != nil {
		s.logger.Warn("Document cache write failed, invalidating", zap.String("key", ck), zap.Error(err))
		if err := s.rdb.Del(ctx, ck).Err(); err != nil {
			s.logger.Warn("Document cache invalidation failed", zap.String("key", ck), zap.Error(err))
		}
	}
	return nil
}

// Uncached returns the wrapped store for reads that must see the latest write.
func (s *cachedDocumentStore) Uncached() document.Store {
	return s.next
}

func (s *cachedDocumentStore) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}

func (s *cachedDocumentStore) Close() {
	s.next.Close()
}
