package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/document"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// postgresDocumentStore keeps each collection in its own table of
// (id, document jsonb, updated_at) rows.
type postgresDocumentStore struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresDocumentStore(db *pgxpool.Pool, logger logger.Logger) document.Store {
	return &postgresDocumentStore{db: db, logger: logger}
}

var psqlDocument = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (s *postgresDocumentStore) Get(ctx context.Context, collection, key string) (json.RawMessage, error) {
	if !document.IsCollection(collection) {
		return nil, apperror.NewInternal("unknown collection", fmt.Errorf("collection %q", collection))
	}

	query, args, err := psqlDocument.
		Select("document").
		From(collection).
		Where(sq.Eq{"id": key}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build document query", err)
	}

	var doc []byte
	if err := s.db.QueryRow(ctx, query, args...).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound(collection, key)
		}
		return nil, apperror.NewStore("get "+collection+"/"+key, err)
	}
	return json.RawMessage(doc), nil
}

func (s *postgresDocumentStore) Replace(ctx context.Context, collection, key string, doc json.RawMessage) error {
	if !document.IsCollection(collection) {
		return apperror.NewInternal("unknown collection", fmt.Errorf("collection %q", collection))
	}

	query, args, err := psqlDocument.
		Insert(collection).
		Columns("id", "document", "updated_at").
		Values(key, []byte(doc), sq.Expr("NOW()")).
		Suffix("ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build document upsert", err)
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return apperror.NewStore("replace "+collection+"/"+key, err)
	}
	return nil
}

func (s *postgresDocumentStore) Ping(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		return apperror.NewStore("ping", err)
	}
	return nil
}

func (s *postgresDocumentStore) Close() {
	s.db.Close()
}
