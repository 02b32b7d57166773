package listings

import (
	"context"

	"github.com/dmitrijs2005/stakemarket/internal/server/models"
)

// Repository is the append-only listing catalog. Listings are never deleted;
// only their active flag changes after creation.
type Repository interface {
	// Create assigns ID and timestamps and returns the stored listing.
	Create(ctx context.Context, listing *models.Listing) (*models.Listing, error)
	// Get returns common.ErrorNotFound for an unknown id.
	Get(ctx context.Context, id models.ListingID) (*models.Listing, error)
	// IDs returns every issued id in publish order.
	IDs(ctx context.Context) ([]models.ListingID, error)
	List(ctx context.Context) ([]*models.Listing, error)
	ListByPublisher(ctx context.Context, publisher string) ([]*models.Listing, error)
	SetActive(ctx context.Context, id models.ListingID, active bool) error
}
