package contentkeys

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/stakemarket/internal/common"
	"github.com/dmitrijs2005/stakemarket/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_FirstWriterWins(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	tx := store.Begin()
	_, err := tx.Create(ctx, &models.ContentKey{Pointer: "bafy", Owner: "alice", Key: []byte{1}})
	require.NoError(t, err)
	_, err = tx.Create(ctx, &models.ContentKey{Pointer: "bafy", Owner: "mallory", Key: []byte{2}})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
	tx.Commit()

	got, err := store.Begin().Get(ctx, "bafy")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Owner)
	assert.Equal(t, []byte{1}, got.Key)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestMemory_PendingKeyInvisibleOutsideTx(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	tx := store.Begin()
	_, _ = tx.Create(ctx, &models.ContentKey{Pointer: "bafy", Owner: "alice", Key: []byte{1}})

	_, err := store.Begin().Get(ctx, "bafy")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemory_ReturnedKeyIsACopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	key := []byte{1, 2}
	tx := store.Begin()
	_, _ = tx.Create(ctx, &models.ContentKey{Pointer: "bafy", Owner: "alice", Key: key})
	tx.Commit()
	key[0] = 9

	got, _ := store.Begin().Get(ctx, "bafy")
	got.Key[1] = 9
	again, _ := store.Begin().Get(ctx, "bafy")
	assert.Equal(t, []byte{1, 2}, again.Key)
}
