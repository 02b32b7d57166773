// Package purchases provides PostgreSQL and in-memory repositories for
// purchase records.
package purchases

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/stakemarket/internal/dbx"
	"github.com/dmitrijs2005/stakemarket/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Purchase) (*models.Purchase, error) {
	query :=
		`INSERT INTO purchases (id, buyer, listing_id, content_ref, price)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING seq, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, p.ID, p.Buyer, p.ListingID, p.ContentRef, p.Price).
		Scan(&p.Seq, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) ListByBuyer(ctx context.Context, buyer string) ([]*models.Purchase, error) {
	query :=
		`SELECT id, seq, buyer, listing_id, content_ref, price, created_at FROM purchases
		 WHERE buyer = $1
		 ORDER BY seq
		 `

	rows, err := r.db.QueryContext(ctx, query, buyer)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Purchase{}
	for rows.Next() {
		var p models.Purchase
		if err := rows.Scan(&p.ID, &p.Seq, &p.Buyer, &p.ListingID, &p.ContentRef, &p.Price, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, buyer string, listingID models.ListingID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM purchases WHERE buyer = $1 AND listing_id = $2)`

	var ok bool
	if err := r.db.QueryRowContext(ctx, query, buyer, listingID).Scan(&ok); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return ok, nil
}
