// Package registry is the stake-gated listing catalog. Like the ledger it
// is bound to the listings repository of one unit of work.
package registry

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/stakemarket/internal/common"
	"github.com/dmitrijs2005/stakemarket/internal/server/models"
	"github.com/dmitrijs2005/stakemarket/internal/server/repositories/listings"
)

type Registry struct {
	repo listings.Repository
}

func New(repo listings.Repository) *Registry {
	return &Registry{repo: repo}
}

// Create inserts an active listing and returns its freshly allocated id.
func (r *Registry) Create(ctx context.Context, publisher string, price, stake models.Amount, contentRef string) (*models.Listing, error) {
	if price <= 0 {
		return nil, common.ErrInvalidPrice
	}

	l, err := r.repo.Create(ctx, &models.Listing{
		Publisher:    publisher,
		Price:        price,
		IsActive:     true,
		StakedAmount: stake,
		ContentRef:   contentRef,
	})
	if err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}
	return l, nil
}

// Get returns common.ErrorNotFound for an unknown id.
func (r *Registry) Get(ctx context.Context, id models.ListingID) (*models.Listing, error) {
	return r.repo.Get(ctx, id)
}

// ListAll returns every id ever issued, in publish order.
func (r *Registry) ListAll(ctx context.Context) ([]models.ListingID, error) {
	return r.repo.IDs(ctx)
}

func (r *Registry) Listings(ctx context.Context) ([]*models.Listing, error) {
	return r.repo.List(ctx)
}

func (r *Registry) ListByPublisher(ctx context.Context, publisher string) ([]*models.Listing, error) {
	return r.repo.ListByPublisher(ctx, publisher)
}

// SetActive is reserved for the transaction engine.
func (r *Registry) SetActive(ctx context.Context, id models.ListingID, active bool) error {
	return r.repo.SetActive(ctx, id, active)
}
