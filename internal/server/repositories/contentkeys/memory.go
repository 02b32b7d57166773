package contentkeys

import (
	"bytes"
	"context"
	"time"

	"github.com/dmitrijs2005/stakemarket/internal/common"
	"github.com/dmitrijs2005/stakemarket/internal/server/models"
)

type MemoryStore struct {
	keys map[string]models.ContentKey
	now  func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		keys: make(map[string]models.ContentKey),
		now:  time.Now,
	}
}

func (s *MemoryStore) Begin() *MemoryRepository {
	return &MemoryRepository{base: s, pending: make(map[string]models.ContentKey)}
}

// MemoryRepository buffers new keys until Commit.
type MemoryRepository struct {
	base    *MemoryStore
	pending map[string]models.ContentKey
}

func (r *MemoryRepository) Commit() {
	for p, k := range r.pending {
		r.base.keys[p] = k
	}
	clear(r.pending)
}

func (r *MemoryRepository) Get(ctx context.Context, pointer string) (*models.ContentKey, error) {
	k, ok := r.pending[pointer]
	if !ok {
		k, ok = r.base.keys[pointer]
	}
	if !ok {
		return nil, common.ErrorNotFound
	}
	k.Key = bytes.Clone(k.Key)
	return &k, nil
}

func (r *MemoryRepository) Create(ctx context.Context, k *models.ContentKey) (*models.ContentKey, error) {
	if _, err := r.Get(ctx, k.Pointer); err == nil {
		return nil, common.ErrorAlreadyExists
	}
	k.CreatedAt = r.base.now().UTC()
	stored := *k
	stored.Key = bytes.Clone(k.Key)
	r.pending[k.Pointer] = stored
	return k, nil
}
