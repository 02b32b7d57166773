// Package contentkeys provides PostgreSQL and in-memory repositories for the
// keys that seal uploaded content.
package contentkeys

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/stakemarket/internal/common"
	"github.com/dmitrijs2005/stakemarket/internal/dbx"
	"github.com/dmitrijs2005/stakemarket/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, pointer string) (*models.ContentKey, error) {
	query := `SELECT pointer, owner, key, created_at FROM content_keys WHERE pointer = $1`

	var k models.ContentKey
	err := r.db.QueryRowContext(ctx, query, pointer).Scan(&k.Pointer, &k.Owner, &k.Key, &k.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &k, nil
}

func (r *PostgresRepository) Create(ctx context.Context, k *models.ContentKey) (*models.ContentKey, error) {
	query :=
		`INSERT INTO content_keys (pointer, owner, key)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (pointer) DO NOTHING
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query, k.Pointer, k.Owner, k.Key).Scan(&k.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return k, nil
}
