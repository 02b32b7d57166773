package purchases

import (
	"context"

	"github.com/dmitrijs2005/stakemarket/internal/server/models"
)

// Repository is the buyer-indexed purchase history. Records are append-only.
type Repository interface {
	// Create assigns Seq and CreatedAt.
	Create(ctx context.Context, p *models.Purchase) (*models.Purchase, error)
	// ListByBuyer returns the buyer's purchases in Seq order.
	ListByBuyer(ctx context.Context, buyer string) ([]*models.Purchase, error)
	Exists(ctx context.Context, buyer string, listingID models.ListingID) (bool, error)
}
