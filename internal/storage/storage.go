package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-server/internal/config"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// ErrNotFound is returned by every table when the requested row does not exist.
var ErrNotFound = sqlconfig.ErrNotFound

type Storage struct {
	sqlDB  *sql.DB
	DB     bob.DB
	Reader *Reader
}

// NewStorage opens the Postgres pool and checks that it is reachable.
func NewStorage(ctx context.Context, env *config.Config) (*Storage, error) {
	sqlDB, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return newStorage(sqlDB), nil
}

func newStorage(sqlDB *sql.DB) *Storage {
	db := bob.NewDB(sqlDB)
	return &Storage{
		sqlDB:  sqlDB,
		DB:     db,
		Reader: NewReader(db),
	}
}

// Write begins a transaction and returns a Writer bound to it. The caller
// owns the Writer and must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return NewWriter(tx), nil
}

// Migrate applies the embedded schema migrations on the open pool.
func (s *Storage) Migrate() (MigrationStatus, error) {
	return RunMigrations(s.sqlDB)
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.sqlDB.Close()
}
