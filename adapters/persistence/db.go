package persistence

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// PostgresDSN returns the configured DSN, with the database replaced by
// cfg.DB.Name when one is set. The DSN must be in URL form.
func PostgresDSN(cfg config.Config) (string, error) {
	if cfg.DB.DSN == "" {
		return "", errors.New("DB_DSN is required for the postgres driver")
	}
	if cfg.DB.Name == "" {
		return cfg.DB.DSN, nil
	}
	u, err := url.Parse(cfg.DB.DSN)
	if err != nil {
		return "", fmt.Errorf("parse DB_DSN: %w", err)
	}
	u.Path = "/" + cfg.DB.Name
	return u.String(), nil
}

func NewPostgresPool(ctx context.Context, dsn string, log logger.Logger) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("do not create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	log.Info("Connect PostgreSQL successfully.")
	return pool, nil
}

// RunMigrations brings the collection tables up to date.
func RunMigrations(dsn string, log logger.Logger) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	log.Info("Migrations applied", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}
