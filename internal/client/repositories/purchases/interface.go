package purchases

import (
	"context"

	"github.com/dmitrijs2005/stakemarket/internal/client/models"
)

// Repository caches purchase records. Records are immutable so writes are
// idempotent upserts by id.
type Repository interface {
	Save(ctx context.Context, p *models.Purchase) error
	ListByBuyer(ctx context.Context, buyer string) ([]*models.Purchase, error)
	MaxSeq(ctx context.Context, buyer string) (int64, error)
	Clear(ctx context.Context) error
}
