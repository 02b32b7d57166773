package repomanager

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/stakemarket/internal/server/repositories/balances"
	"github.com/dmitrijs2005/stakemarket/internal/server/repositories/contentkeys"
	"github.com/dmitrijs2005/stakemarket/internal/server/repositories/listings"
	"github.com/dmitrijs2005/stakemarket/internal/server/repositories/purchases"
)

type memoryRepositories struct {
	balances    *balances.MemoryRepository
	listings    *listings.MemoryRepository
	purchases   *purchases.MemoryRepository
	contentKeys *contentkeys.MemoryRepository
}

func (r *memoryRepositories) Balances() balances.Repository       { return r.balances }
func (r *memoryRepositories) Listings() listings.Repository       { return r.listings }
func (r *memoryRepositories) Purchases() purchases.Repository     { return r.purchases }
func (r *memoryRepositories) ContentKeys() contentkeys.Repository { return r.contentKeys }

func (r *memoryRepositories) commit() {
	r.balances.Commit()
	r.listings.Commit()
	r.purchases.Commit()
	r.contentKeys.Commit()
}

// MemoryRepositoryManager keeps all state in process. Writers hold an
// exclusive lock for the whole unit of work; an error discards the overlays.
type MemoryRepositoryManager struct {
	mu          sync.RWMutex
	balances    *balances.MemoryStore
	listings    *listings.MemoryStore
	purchases   *purchases.MemoryStore
	contentKeys *contentkeys.MemoryStore
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		balances:    balances.NewMemoryStore(),
		listings:    listings.NewMemoryStore(),
		purchases:   purchases.NewMemoryStore(),
		contentKeys: contentkeys.NewMemoryStore(),
	}
}

func (m *MemoryRepositoryManager) begin() *memoryRepositories {
	return &memoryRepositories{
		balances:    m.balances.Begin(),
		listings:    m.listings.Begin(),
		purchases:   m.purchases.Begin(),
		contentKeys: m.contentKeys.Begin(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *MemoryRepositoryManager) Atomic(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	r := m.begin()
	if err := fn(ctx, r); err != nil {
		return err
	}
	r.commit()
	return nil
}

func (m *MemoryRepositoryManager) Snapshot(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, m.begin())
}

func (m *MemoryRepositoryManager) Close() error {
	return nil
}
