package engine

import (
	"context"

	"github.com/dmitrijs2005/stakemarket/internal/server/ledger"
	"github.com/dmitrijs2005/stakemarket/internal/server/models"
	"github.com/dmitrijs2005/stakemarket/internal/server/registry"
	"github.com/dmitrijs2005/stakemarket/internal/server/repositories/repomanager"
)

// Read-only queries. They bypass the sequencer and observe one committed
// snapshot each.

func (e *Engine) StakeAmount() models.Amount {
	return e.cfg.StakeAmount
}

func (e *Engine) EngineAccount() string {
	return e.cfg.EngineAccount
}

func (e *Engine) GetListing(ctx context.Context, id models.ListingID) (*models.Listing, error) {
	var l *models.Listing
	err := e.repos.Snapshot(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		var err error
		l, err = registry.New(r.Listings()).Get(ctx, id)
		return err
	})
	return l, err
}

// ListAll returns listing ids in publish order.
func (e *Engine) ListAll(ctx context.Context) ([]models.ListingID, error) {
	var ids []models.ListingID
	err := e.repos.Snapshot(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		var err error
		ids, err = registry.New(r.Listings()).ListAll(ctx)
		return err
	})
	return ids, err
}

// Listings returns full listing details in publish order.
func (e *Engine) Listings(ctx context.Context) ([]*models.Listing, error) {
	var ls []*models.Listing
	err := e.repos.Snapshot(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		var err error
		ls, err = registry.New(r.Listings()).Listings(ctx)
		return err
	})
	return ls, err
}

func (e *Engine) ListByPublisher(ctx context.Context, publisher string) ([]*models.Listing, error) {
	var ls []*models.Listing
	err := e.repos.Snapshot(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		var err error
		ls, err = registry.New(r.Listings()).ListByPublisher(ctx, publisher)
		return err
	})
	return ls, err
}

func (e *Engine) BalanceOf(ctx context.Context, account string) (models.Amount, error) {
	var b models.Amount
	err := e.repos.Snapshot(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		var err error
		b, err = ledger.New(r.Balances()).BalanceOf(ctx, account)
		return err
	})
	return b, err
}

func (e *Engine) Allowance(ctx context.Context, owner, spender string) (models.Amount, error) {
	var a models.Amount
	err := e.repos.Snapshot(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		var err error
		a, err = ledger.New(r.Balances()).Allowance(ctx, owner, spender)
		return err
	})
	return a, err
}

func (e *Engine) TotalSupply(ctx context.Context) (models.Amount, error) {
	var s models.Amount
	err := e.repos.Snapshot(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		var err error
		s, err = ledger.New(r.Balances()).TotalSupply(ctx)
		return err
	})
	return s, err
}

// Accounts lists every ledger account with its balance, ordered by id.
func (e *Engine) Accounts(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	err := e.repos.Snapshot(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		var err error
		accounts, err = r.Balances().Accounts(ctx)
		return err
	})
	return accounts, err
}

// VaultBalance is the total stake held in escrow.
func (e *Engine) VaultBalance(ctx context.Context) (models.Amount, error) {
	return e.BalanceOf(ctx, e.cfg.VaultAccount)
}

// PurchasesOf returns the buyer's purchase history in sequence order.
func (e *Engine) PurchasesOf(ctx context.Context, buyer string) ([]*models.Purchase, error) {
	var ps []*models.Purchase
	err := e.repos.Snapshot(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		var err error
		ps, err = r.Purchases().ListByBuyer(ctx, buyer)
		return err
	})
	return ps, err
}

// HasAccess reports whether identity may use the listing's content: it is
// the publisher or holds a purchase record for it.
func (e *Engine) HasAccess(ctx context.Context, identity string, id models.ListingID) (bool, error) {
	var ok bool
	err := e.repos.Snapshot(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		l, err := registry.New(r.Listings()).Get(ctx, id)
		if err != nil {
			return err
		}
		if l.Publisher == identity {
			ok = true
			return nil
		}
		ok, err = r.Purchases().Exists(ctx, identity, id)
		return err
	})
	return ok, err
}

// SubscriberCount reports the number of live event subscriptions.
func (e *Engine) SubscriberCount() int {
	return e.bus.Subscribers()
}
