// Package listings provides PostgreSQL and in-memory repositories for the
// listing registry.
package listings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/stakemarket/internal/common"
	"github.com/dmitrijs2005/stakemarket/internal/dbx"
	"github.com/dmitrijs2005/stakemarket/internal/server/models"
)

// PostgresRepository implements listing storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectListing = `SELECT id, publisher, price, is_active, staked_amount, content_ref, created_at, updated_at FROM listings`

type scanner interface {
	Scan(dest ...any) error
}

func scanListing(s scanner) (*models.Listing, error) {
	var l models.Listing
	if err := s.Scan(&l.ID, &l.Publisher, &l.Price, &l.IsActive, &l.StakedAmount, &l.ContentRef, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *PostgresRepository) Create(ctx context.Context, listing *models.Listing) (*models.Listing, error) {
	query :=
		`INSERT INTO listings (publisher, price, is_active, staked_amount, content_ref)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		listing.Publisher, listing.Price, listing.IsActive, listing.StakedAmount, listing.ContentRef).
		Scan(&listing.ID, &listing.CreatedAt, &listing.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return listing, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id models.ListingID) (*models.Listing, error) {
	l, err := scanListing(r.db.QueryRowContext(ctx, selectListing+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return l, nil
}

func (r *PostgresRepository) IDs(ctx context.Context) ([]models.ListingID, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM listings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.ListingID{}
	for rows.Next() {
		var id models.ListingID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result = append(result, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Listing, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Listing, error) {
	return r.list(ctx, selectListing+` ORDER BY id`)
}

func (r *PostgresRepository) ListByPublisher(ctx context.Context, publisher string) ([]*models.Listing, error) {
	return r.list(ctx, selectListing+` WHERE publisher = $1 ORDER BY id`, publisher)
}

func (r *PostgresRepository) SetActive(ctx context.Context, id models.ListingID, active bool) error {
	query := `UPDATE listings SET is_active = $2, updated_at = now() WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, active)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
