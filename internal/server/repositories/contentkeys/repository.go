package contentkeys

import (
	"context"

	"github.com/dmitrijs2005/stakemarket/internal/server/models"
)

// Repository stores content keys by pointer. Keys are written once.
type Repository interface {
	// Get returns common.ErrorNotFound when no key is registered.
	Get(ctx context.Context, pointer string) (*models.ContentKey, error)
	// Create assigns CreatedAt.
	Create(ctx context.Context, k *models.ContentKey) (*models.ContentKey, error)
}
