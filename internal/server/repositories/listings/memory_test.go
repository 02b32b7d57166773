package listings

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/stakemarket/internal/common"
	"github.com/dmitrijs2005/stakemarket/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_CreateAssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	tx := store.Begin()
	a, err := tx.Create(ctx, &models.Listing{Publisher: "alice", Price: 10, IsActive: true})
	require.NoError(t, err)
	b, err := tx.Create(ctx, &models.Listing{Publisher: "bob", Price: 20, IsActive: true})
	require.NoError(t, err)
	tx.Commit()

	assert.Equal(t, models.ListingID(1), a.ID)
	assert.Equal(t, models.ListingID(2), b.ID)
	assert.False(t, a.CreatedAt.IsZero())

	ids, _ := store.Begin().IDs(ctx)
	assert.Equal(t, []models.ListingID{1, 2}, ids)
}

func TestMemory_DiscardedCreateNeverReusesID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	discarded := store.Begin()
	_, err := discarded.Create(ctx, &models.Listing{Publisher: "alice", Price: 10})
	require.NoError(t, err)

	tx := store.Begin()
	l, err := tx.Create(ctx, &models.Listing{Publisher: "alice", Price: 10})
	require.NoError(t, err)
	tx.Commit()

	assert.Equal(t, models.ListingID(2), l.ID)

	ids, _ := store.Begin().IDs(ctx)
	assert.Equal(t, []models.ListingID{2}, ids)

	_, err = store.Begin().Get(ctx, 1)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemory_SetActiveIsolatedUntilCommit(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	seed := store.Begin()
	l, _ := seed.Create(ctx, &models.Listing{Publisher: "alice", Price: 10, IsActive: true})
	seed.Commit()

	tx := store.Begin()
	require.NoError(t, tx.SetActive(ctx, l.ID, false))

	before, _ := store.Begin().Get(ctx, l.ID)
	assert.True(t, before.IsActive)

	inTx, _ := tx.Get(ctx, l.ID)
	assert.False(t, inTx.IsActive)

	tx.Commit()
	after, _ := store.Begin().Get(ctx, l.ID)
	assert.False(t, after.IsActive)
}

func TestMemory_SetActiveUnknown(t *testing.T) {
	tx := NewMemoryStore().Begin()
	assert.ErrorIs(t, tx.SetActive(context.Background(), 42, true), common.ErrorNotFound)
}

func TestMemory_ListByPublisherKeepsOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	tx := store.Begin()
	for _, p := range []string{"alice", "bob", "alice"} {
		_, err := tx.Create(ctx, &models.Listing{Publisher: p, Price: 1, IsActive: true})
		require.NoError(t, err)
	}
	tx.Commit()

	mine, err := store.Begin().ListByPublisher(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, models.ListingID(1), mine[0].ID)
	assert.Equal(t, models.ListingID(3), mine[1].ID)

	all, err := store.Begin().List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemory_ReturnedListingIsACopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	tx := store.Begin()
	l, _ := tx.Create(ctx, &models.Listing{Publisher: "alice", Price: 10, IsActive: true})
	tx.Commit()

	got, _ := store.Begin().Get(ctx, l.ID)
	got.Publisher = "mallory"

	again, _ := store.Begin().Get(ctx, l.ID)
	assert.Equal(t, "alice", again.Publisher)
}
