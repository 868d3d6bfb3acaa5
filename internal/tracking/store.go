package tracking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"

	"github.com/LabsDAO/data-gamify-network/internal/tracking/migrations"
)

const (
	pingAttempts = 3
	pingBackoff  = time.Second
)

// Store owns the backend uploads database: connection, migrations, and the
// repository bound to it.
type Store struct {
	db      *sql.DB
	uploads Repository
}

func (s *Store) Conn() *sql.DB {
	return s.db
}

func (s *Store) Uploads() Repository {
	return s.uploads
}

func (s *Store) Close() error {
	return s.db.Close()
}

// RunMigrations applies the embedded goose migrations.
func (s *Store) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	// the local state store sets the global goose dialect to sqlite
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, s.db, "."); err != nil {
		return err
	}

	return nil
}

// NewStore opens the uploads database, waits for it to answer a ping with a
// bounded constant backoff, and applies migrations.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	backoff := retry.WithMaxRetries(pingAttempts, retry.NewConstant(pingBackoff))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	s := &Store{
		db:      db,
		uploads: NewPostgresRepository(db),
	}

	if err := s.RunMigrations(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return s, nil
}
