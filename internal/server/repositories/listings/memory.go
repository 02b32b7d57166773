package listings

import (
	"context"
	"time"

	"github.com/dmitrijs2005/stakemarket/internal/common"
	"github.com/dmitrijs2005/stakemarket/internal/server/models"
)

// MemoryStore is the committed in-memory catalog. Access is serialized by
// the repository manager.
type MemoryStore struct {
	byID   map[models.ListingID]models.Listing
	order  []models.ListingID
	lastID models.ListingID
	now    func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[models.ListingID]models.Listing),
		now:  time.Now,
	}
}

// Begin opens a write overlay on top of the committed catalog.
func (s *MemoryStore) Begin() *MemoryRepository {
	return &MemoryRepository{
		base:    s,
		changed: make(map[models.ListingID]models.Listing),
	}
}

// MemoryRepository is a transactional view over a MemoryStore.
type MemoryRepository struct {
	base    *MemoryStore
	changed map[models.ListingID]models.Listing
	added   []models.ListingID
}

// Commit publishes new and updated listings into the committed catalog.
func (r *MemoryRepository) Commit() {
	for id, l := range r.changed {
		r.base.byID[id] = l
	}
	r.base.order = append(r.base.order, r.added...)
}

func (r *MemoryRepository) lookup(id models.ListingID) (models.Listing, bool) {
	if l, ok := r.changed[id]; ok {
		return l, true
	}
	l, ok := r.base.byID[id]
	return l, ok
}

func (r *MemoryRepository) ids() []models.ListingID {
	result := make([]models.ListingID, 0, len(r.base.order)+len(r.added))
	result = append(result, r.base.order...)
	return append(result, r.added...)
}

func (r *MemoryRepository) Create(ctx context.Context, listing *models.Listing) (*models.Listing, error) {
	// Drawn from the committed counter: a discarded overlay never reuses an id.
	r.base.lastID++
	now := r.base.now().UTC()

	listing.ID = r.base.lastID
	listing.CreatedAt = now
	listing.UpdatedAt = now

	r.changed[listing.ID] = *listing
	r.added = append(r.added, listing.ID)

	out := *listing
	return &out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id models.ListingID) (*models.Listing, error) {
	l, ok := r.lookup(id)
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &l, nil
}

func (r *MemoryRepository) IDs(ctx context.Context) ([]models.ListingID, error) {
	return r.ids(), nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.Listing, error) {
	ids := r.ids()
	result := make([]*models.Listing, 0, len(ids))
	for _, id := range ids {
		l, _ := r.lookup(id)
		result = append(result, &l)
	}
	return result, nil
}

func (r *MemoryRepository) ListByPublisher(ctx context.Context, publisher string) ([]*models.Listing, error) {
	result := []*models.Listing{}
	for _, id := range r.ids() {
		l, _ := r.lookup(id)
		if l.Publisher == publisher {
			result = append(result, &l)
		}
	}
	return result, nil
}

func (r *MemoryRepository) SetActive(ctx context.Context, id models.ListingID, active bool) error {
	l, ok := r.lookup(id)
	if !ok {
		return common.ErrorNotFound
	}
	l.IsActive = active
	l.UpdatedAt = r.base.now().UTC()
	r.changed[id] = l
	return nil
}
