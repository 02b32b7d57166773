package purchases

import (
	"context"
	"time"

	"github.com/dmitrijs2005/stakemarket/internal/server/models"
)

// MemoryStore keeps purchase records together with a buyer index that is
// maintained on every commit, so history lookups never scan the full log.
type MemoryStore struct {
	log     []models.Purchase
	byBuyer map[string][]int
	lastSeq int64
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byBuyer: make(map[string][]int),
		now:     time.Now,
	}
}

func (s *MemoryStore) Begin() *MemoryRepository {
	return &MemoryRepository{base: s}
}

// MemoryRepository buffers new records until Commit.
type MemoryRepository struct {
	base    *MemoryStore
	pending []models.Purchase
}

func (r *MemoryRepository) Commit() {
	for _, p := range r.pending {
		r.base.log = append(r.base.log, p)
		r.base.byBuyer[p.Buyer] = append(r.base.byBuyer[p.Buyer], len(r.base.log)-1)
	}
	r.pending = nil
}

func (r *MemoryRepository) Create(ctx context.Context, p *models.Purchase) (*models.Purchase, error) {
	r.base.lastSeq++
	p.Seq = r.base.lastSeq
	p.CreatedAt = r.base.now().UTC()
	r.pending = append(r.pending, *p)

	out := *p
	return &out, nil
}

func (r *MemoryRepository) ListByBuyer(ctx context.Context, buyer string) ([]*models.Purchase, error) {
	result := []*models.Purchase{}
	for _, i := range r.base.byBuyer[buyer] {
		p := r.base.log[i]
		result = append(result, &p)
	}
	for _, p := range r.pending {
		if p.Buyer == buyer {
			p := p
			result = append(result, &p)
		}
	}
	return result, nil
}

func (r *MemoryRepository) Exists(ctx context.Context, buyer string, listingID models.ListingID) (bool, error) {
	all, _ := r.ListByBuyer(ctx, buyer)
	for _, p := range all {
		if p.ListingID == listingID {
			return true, nil
		}
	}
	return false, nil
}
