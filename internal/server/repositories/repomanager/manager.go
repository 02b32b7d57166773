// Package repomanager groups the entity repositories into atomic units of
// work. Every state transition of the market runs inside Atomic; read-only
// queries run inside Snapshot and observe a single committed state.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/stakemarket/internal/server/repositories/balances"
	"github.com/dmitrijs2005/stakemarket/internal/server/repositories/contentkeys"
	"github.com/dmitrijs2005/stakemarket/internal/server/repositories/listings"
	"github.com/dmitrijs2005/stakemarket/internal/server/repositories/purchases"
)

// Repositories is the set of repositories bound to one unit of work.
type Repositories interface {
	Balances() balances.Repository
	Listings() listings.Repository
	Purchases() purchases.Repository
	ContentKeys() contentkeys.Repository
}

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	// Atomic runs fn exclusively with respect to every other Atomic call.
	// Effects are committed only if fn returns nil.
	Atomic(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error
	Snapshot(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error
	Close() error
}
