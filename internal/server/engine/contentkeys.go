package engine

import (
	"bytes"
	"context"
	"errors"

	"github.com/dmitrijs2005/stakemarket/internal/common"
	"github.com/dmitrijs2005/stakemarket/internal/server/models"
	"github.com/dmitrijs2005/stakemarket/internal/server/repositories/repomanager"
)

// RegisterContentKey binds key to pointer on behalf of owner. The first
// registration wins: repeating it is a no-op, and any different owner or
// key for the same pointer is refused.
func (e *Engine) RegisterContentKey(ctx context.Context, owner, pointer string, key []byte) error {
	if e.reserved(owner) {
		return common.ErrNotAuthorized
	}
	if pointer == "" {
		return common.ErrInvalidContentRef
	}
	if len(key) == 0 {
		return common.ErrInvalidContentKey
	}

	return e.apply(ctx, OpRegisterKey, func(ctx context.Context, r repomanager.Repositories) ([]models.Event, error) {
		existing, err := r.ContentKeys().Get(ctx, pointer)
		switch {
		case err == nil:
			if existing.Owner != owner || !bytes.Equal(existing.Key, key) {
				return nil, common.ErrNotAuthorized
			}
			return nil, nil
		case !errors.Is(err, common.ErrorNotFound):
			return nil, err
		}

		_, err = r.ContentKeys().Create(ctx, &models.ContentKey{Pointer: pointer, Owner: owner, Key: key})
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrNotAuthorized
		}
		return nil, err
	})
}

// ContentKey returns the key registered for pointer, or
// common.ErrorNotFound.
func (e *Engine) ContentKey(ctx context.Context, pointer string) (*models.ContentKey, error) {
	var k *models.ContentKey
	err := e.repos.Snapshot(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		var err error
		k, err = r.ContentKeys().Get(ctx, pointer)
		return err
	})
	return k, err
}
