package balances

import (
	"context"
	"sort"

	"github.com/dmitrijs2005/stakemarket/internal/common"
	"github.com/dmitrijs2005/stakemarket/internal/server/models"
)

type allowanceKey struct {
	owner   string
	spender string
}

// MemoryStore is the committed in-memory balance state. It is not
// synchronized; the repository manager serializes access to it.
type MemoryStore struct {
	balances   map[string]models.Amount
	allowances map[allowanceKey]models.Amount
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		balances:   make(map[string]models.Amount),
		allowances: make(map[allowanceKey]models.Amount),
	}
}

// Begin opens a write overlay on top of the committed state. Nothing is
// visible in the store until Commit.
func (s *MemoryStore) Begin() *MemoryRepository {
	return &MemoryRepository{
		base:       s,
		balances:   make(map[string]models.Amount),
		allowances: make(map[allowanceKey]models.Amount),
	}
}

// MemoryRepository is a transactional view over a MemoryStore.
type MemoryRepository struct {
	base       *MemoryStore
	balances   map[string]models.Amount
	allowances map[allowanceKey]models.Amount
}

// Commit publishes the overlay into the committed state.
func (r *MemoryRepository) Commit() {
	for k, v := range r.balances {
		r.base.balances[k] = v
	}
	for k, v := range r.allowances {
		if v == 0 {
			delete(r.base.allowances, k)
			continue
		}
		r.base.allowances[k] = v
	}
}

func (r *MemoryRepository) balance(account string) models.Amount {
	if v, ok := r.balances[account]; ok {
		return v
	}
	return r.base.balances[account]
}

func (r *MemoryRepository) Balance(ctx context.Context, account string) (models.Amount, error) {
	return r.balance(account), nil
}

func (r *MemoryRepository) Credit(ctx context.Context, account string, amount models.Amount) error {
	r.balances[account] = r.balance(account) + amount
	return nil
}

func (r *MemoryRepository) Debit(ctx context.Context, account string, amount models.Amount) error {
	current := r.balance(account)
	if current < amount {
		return common.ErrInsufficientBalance
	}
	r.balances[account] = current - amount
	return nil
}

func (r *MemoryRepository) Allowance(ctx context.Context, owner, spender string) (models.Amount, error) {
	k := allowanceKey{owner: owner, spender: spender}
	if v, ok := r.allowances[k]; ok {
		return v, nil
	}
	return r.base.allowances[k], nil
}

func (r *MemoryRepository) SetAllowance(ctx context.Context, owner, spender string, amount models.Amount) error {
	r.allowances[allowanceKey{owner: owner, spender: spender}] = amount
	return nil
}

func (r *MemoryRepository) merged() map[string]models.Amount {
	all := make(map[string]models.Amount, len(r.base.balances)+len(r.balances))
	for k, v := range r.base.balances {
		all[k] = v
	}
	for k, v := range r.balances {
		all[k] = v
	}
	return all
}

func (r *MemoryRepository) TotalSupply(ctx context.Context) (models.Amount, error) {
	var total models.Amount
	for _, v := range r.merged() {
		total += v
	}
	return total, nil
}

func (r *MemoryRepository) Accounts(ctx context.Context) ([]models.Account, error) {
	all := r.merged()
	result := make([]models.Account, 0, len(all))
	for id, balance := range all {
		result = append(result, models.Account{ID: id, Balance: balance})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
