package balances

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/stakemarket/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_OverlayInvisibleUntilCommit(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	tx := store.Begin()
	require.NoError(t, tx.Credit(ctx, "alice", 100))
	require.NoError(t, tx.SetAllowance(ctx, "alice", "market", 40))

	view := store.Begin()
	got, _ := view.Balance(ctx, "alice")
	assert.Zero(t, got, "uncommitted credit must not leak")

	tx.Commit()

	view = store.Begin()
	got, _ = view.Balance(ctx, "alice")
	assert.Equal(t, int64(100), got)
	allowance, _ := view.Allowance(ctx, "alice", "market")
	assert.Equal(t, int64(40), allowance)
}

func TestMemory_DiscardedOverlayLeavesStateIntact(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	seed := store.Begin()
	require.NoError(t, seed.Credit(ctx, "alice", 100))
	seed.Commit()

	tx := store.Begin()
	require.NoError(t, tx.Debit(ctx, "alice", 60))
	// dropped without Commit

	view := store.Begin()
	got, _ := view.Balance(ctx, "alice")
	assert.Equal(t, int64(100), got)
}

func TestMemory_DebitInsufficient(t *testing.T) {
	ctx := context.Background()
	tx := NewMemoryStore().Begin()
	require.NoError(t, tx.Credit(ctx, "alice", 10))

	err := tx.Debit(ctx, "alice", 11)
	assert.ErrorIs(t, err, common.ErrInsufficientBalance)

	got, _ := tx.Balance(ctx, "alice")
	assert.Equal(t, int64(10), got)
}

func TestMemory_TotalSupplyMergesOverlay(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	seed := store.Begin()
	require.NoError(t, seed.Credit(ctx, "alice", 1000))
	seed.Commit()

	tx := store.Begin()
	require.NoError(t, tx.Debit(ctx, "alice", 300))
	require.NoError(t, tx.Credit(ctx, "bob", 300))

	total, err := tx.TotalSupply(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), total)

	accounts, err := tx.Accounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "alice", accounts[0].ID)
	assert.Equal(t, int64(700), accounts[0].Balance)
	assert.Equal(t, "bob", accounts[1].ID)
}

func TestMemory_ZeroAllowanceIsPruned(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	tx := store.Begin()
	require.NoError(t, tx.SetAllowance(ctx, "alice", "market", 5))
	tx.Commit()

	tx = store.Begin()
	require.NoError(t, tx.SetAllowance(ctx, "alice", "market", 0))
	tx.Commit()

	_, ok := store.allowances[allowanceKey{owner: "alice", spender: "market"}]
	assert.False(t, ok)
}
