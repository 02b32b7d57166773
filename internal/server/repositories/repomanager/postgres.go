package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/stakemarket/internal/dbx"
	"github.com/dmitrijs2005/stakemarket/internal/server/migrations"
	"github.com/dmitrijs2005/stakemarket/internal/server/repositories/balances"
	"github.com/dmitrijs2005/stakemarket/internal/server/repositories/contentkeys"
	"github.com/dmitrijs2005/stakemarket/internal/server/repositories/listings"
	"github.com/dmitrijs2005/stakemarket/internal/server/repositories/purchases"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// marketLockKey identifies the advisory lock that serializes writers across
// every server process sharing the database.
const marketLockKey int64 = 0x5354414b45

type postgresRepositories struct {
	tx dbx.DBTX
}

func (r postgresRepositories) Balances() balances.Repository {
	return balances.NewPostgresRepository(r.tx)
}

func (r postgresRepositories) Listings() listings.Repository {
	return listings.NewPostgresRepository(r.tx)
}

func (r postgresRepositories) Purchases() purchases.Repository {
	return purchases.NewPostgresRepository(r.tx)
}

func (r postgresRepositories) ContentKeys() contentkeys.Repository {
	return contentkeys.NewPostgresRepository(r.tx)
}

// PostgresRepositoryManager runs units of work as PostgreSQL transactions.
type PostgresRepositoryManager struct {
	db *sql.DB
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, ".")
}

func (m *PostgresRepositoryManager) Atomic(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := dbx.AdvisoryXactLock(ctx, tx, marketLockKey); err != nil {
			return err
		}
		return fn(ctx, postgresRepositories{tx: tx})
	})
}

func (m *PostgresRepositoryManager) Snapshot(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error {
	return dbx.WithTx(ctx, m.db, dbx.SnapshotOptions, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, postgresRepositories{tx: tx})
	})
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{db: db}
}
