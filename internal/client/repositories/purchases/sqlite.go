// Package purchases is the CLI's sqlite cache of the user's purchase history.
package purchases

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/stakemarket/internal/client/models"
	"github.com/dmitrijs2005/stakemarket/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, p *models.Purchase) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO purchases (id, seq, buyer, listing_id, content_ref, price, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, p.ID, p.Seq, p.Buyer, p.ListingID, p.ContentRef, p.Price, p.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to save purchase: %w", err)
	}
	return nil
}

// ListByBuyer returns cached purchases in sequence order.
func (r *SQLiteRepository) ListByBuyer(ctx context.Context, buyer string) ([]*models.Purchase, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, seq, buyer, listing_id, content_ref, price, created_at
		FROM purchases WHERE buyer = ? ORDER BY seq
	`, buyer)
	if err != nil {
		return nil, fmt.Errorf("failed to select purchases: %w", err)
	}
	defer rows.Close()

	var result []*models.Purchase
	for rows.Next() {
		p := &models.Purchase{}
		if err := rows.Scan(&p.ID, &p.Seq, &p.Buyer, &p.ListingID, &p.ContentRef, &p.Price, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate purchases: %w", err)
	}
	return result, nil
}

// MaxSeq is the highest cached sequence marker for buyer, 0 when none.
func (r *SQLiteRepository) MaxSeq(ctx context.Context, buyer string) (int64, error) {
	var seq int64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) FROM purchases WHERE buyer = ?`, buyer).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("failed to read max seq: %w", err)
	}
	return seq, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM purchases`); err != nil {
		return fmt.Errorf("failed to clear purchases: %w", err)
	}
	return nil
}
