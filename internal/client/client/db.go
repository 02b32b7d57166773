package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/stakemarket/internal/client/migrations"
	"github.com/dmitrijs2005/stakemarket/internal/client/repositories/keys"
	"github.com/dmitrijs2005/stakemarket/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/stakemarket/internal/client/repositories/purchases"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Repositories groups the local cache stores.
type Repositories struct {
	Metadata  metadata.Repository
	Purchases purchases.Repository
	Keys      keys.Repository
}

func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Metadata:  metadata.NewSQLiteRepository(db),
		Purchases: purchases.NewSQLiteRepository(db),
		Keys:      keys.NewSQLiteRepository(db),
	}
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the sqlite cache at dsn and migrates it.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
