// Package keys stores the content keys a publisher sealed uploads with.
package keys

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/stakemarket/internal/client/models"
	"github.com/dmitrijs2005/stakemarket/internal/common"
	"github.com/dmitrijs2005/stakemarket/internal/dbx"
)

type Repository interface {
	Put(ctx context.Context, k *models.ContentKey) error
	Get(ctx context.Context, pointer string) (*models.ContentKey, error)
}

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Put(ctx context.Context, k *models.ContentKey) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO content_keys (pointer, key) VALUES (?, ?)
		ON CONFLICT(pointer) DO UPDATE SET key = excluded.key
	`, k.Pointer, k.Key)
	if err != nil {
		return fmt.Errorf("failed to store key for %s: %w", k.Pointer, err)
	}
	return nil
}

// Get returns common.ErrorNotFound when no key is stored for pointer.
func (r *SQLiteRepository) Get(ctx context.Context, pointer string) (*models.ContentKey, error) {
	k := &models.ContentKey{Pointer: pointer}
	err := r.db.QueryRowContext(ctx, `SELECT key FROM content_keys WHERE pointer = ?`, pointer).Scan(&k.Key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get key for %s: %w", pointer, err)
	}
	return k, nil
}
