package purchases

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/stakemarket/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_IndexByBuyer(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	tx := store.Begin()
	_, err := tx.Create(ctx, &models.Purchase{ID: "a", Buyer: "bob", ListingID: 1})
	require.NoError(t, err)
	_, err = tx.Create(ctx, &models.Purchase{ID: "b", Buyer: "carol", ListingID: 2})
	require.NoError(t, err)
	_, err = tx.Create(ctx, &models.Purchase{ID: "c", Buyer: "bob", ListingID: 3})
	require.NoError(t, err)
	tx.Commit()

	got, err := store.Begin().ListByBuyer(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
	assert.Less(t, got[0].Seq, got[1].Seq)

	none, err := store.Begin().ListByBuyer(ctx, "dave")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemory_PendingVisibleOnlyInsideTx(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	tx := store.Begin()
	_, _ = tx.Create(ctx, &models.Purchase{ID: "a", Buyer: "bob", ListingID: 7})

	ok, _ := tx.Exists(ctx, "bob", 7)
	assert.True(t, ok)

	ok, _ = store.Begin().Exists(ctx, "bob", 7)
	assert.False(t, ok)
}
