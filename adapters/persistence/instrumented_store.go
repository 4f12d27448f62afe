package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/domain/document"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/metrics"
)

const tracerName = "github.com/khoahotran/portfolio-api/adapters/persistence"

// instrumentedDocumentStore records a span, a metric and, for store failures,
// an error log around every call.
type instrumentedDocumentStore struct {
	next    document.Store
	tracer  trace.Tracer
	metrics *metrics.Collector
	logger  logger.Logger
}

func NewInstrumentedDocumentStore(next document.Store, m *metrics.Collector, log logger.Logger) document.Store {
	return &instrumentedDocumentStore{
		next:    next,
		tracer:  otel.Tracer(tracerName),
		metrics: m,
		logger:  log,
	}
}

func (s *instrumentedDocumentStore) Get(ctx context.Context, collection, key string) (json.RawMessage, error) {
	ctx, span := s.start(ctx, "document.get", collection, key)
	defer span.End()

	start := time.Now()
	doc, err := s.next.Get(ctx, collection, key)
	s.finish(ctx, span, "get", collection, key, start, err)
	return doc, err
}

func (s *instrumentedDocumentStore) Replace(ctx context.Context, collection, key string, doc json.RawMessage) error {
	ctx, span := s.start(ctx, "document.replace", collection, key)
	defer span.End()
	span.SetAttributes(attribute.Int("document.size", len(doc)))

	start := time.Now()
	err := s.next.Replace(ctx, collection, key, doc)
	s.finish(ctx, span, "replace", collection, key, start, err)
	return err
}

func (s *instrumentedDocumentStore) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}

func (s *instrumentedDocumentStore) Close() {
	s.next.Close()
}

func (s *instrumentedDocumentStore) start(ctx context.Context, name, collection, key string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("document.collection", collection),
		attribute.String("document.key", key),
	))
}

func (s *instrumentedDocumentStore) finish(ctx context.Context, span trace.Span, op, collection, key string, start time.Time, err error) {
	status := "ok"
	switch {
	case err == nil:
	case errors.Is(err, apperror.ErrNotFound):
		status = "not_found"
	default:
		status = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, op+" failed")
		s.logger.WithContext(ctx).Error("Document store operation failed", err,
			zap.String("operation", op),
			zap.String("collection", collection),
			zap.String("key", key),
		)
	}
	s.metrics.ObserveStore(op, collection, status, time.Since(start))
}
