// Package engine is the marketplace transaction engine: the only mutator of
// balances, listings, purchase records and content keys. Every mutation runs as one atomic
// unit behind an engine-wide sequencer; reads run against a snapshot.
package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/stakemarket/internal/common"
	"github.com/dmitrijs2005/stakemarket/internal/logging"
	"github.com/dmitrijs2005/stakemarket/internal/server/ledger"
	"github.com/dmitrijs2005/stakemarket/internal/server/models"
	"github.com/dmitrijs2005/stakemarket/internal/server/registry"
	"github.com/dmitrijs2005/stakemarket/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Operation names reported to the Observer.
const (
	OpPublish      = "publish"
	OpBuyAccess    = "buy_access"
	OpToggleStatus = "toggle_status"
	OpTransfer     = "transfer"
	OpApprove      = "approve"
	OpTransferFrom = "transfer_from"
	OpGenesis      = "genesis"
	OpRegisterKey  = "register_content_key"
)

// Config fixes the engine's economic constants.
type Config struct {
	// StakeAmount is locked in the vault by every publish.
	StakeAmount models.Amount
	// EngineAccount is the spender identity users approve before publishing
	// or buying.
	EngineAccount string
	// VaultAccount holds escrowed stakes. There is no release path.
	VaultAccount string
}

// Observer receives the outcome of every mutating operation.
type Observer interface {
	OperationCompleted(op string, err error, elapsed time.Duration)
}

type noopObserver struct{}

func (noopObserver) OperationCompleted(string, error, time.Duration) {}

type Option func(*Engine)

func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

func WithBus(b *Bus) Option {
	return func(e *Engine) { e.bus = b }
}

// Allocation is one genesis credit.
type Allocation struct {
	Account string
	Amount  models.Amount
}

type Engine struct {
	mu       sync.Mutex
	repos    repomanager.RepositoryManager
	cfg      Config
	bus      *Bus
	observer Observer
	logger   logging.Logger
	newID    func() string
	now      func() time.Time
}

func New(repos repomanager.RepositoryManager, cfg Config, logger logging.Logger, opts ...Option) *Engine {
	e := &Engine{
		repos:    repos,
		cfg:      cfg,
		bus:      NewBus(0),
		observer: noopObserver{},
		logger:   logger.With("module", "engine"),
		newID:    uuid.NewString,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// apply runs fn as one atomic unit under the sequencer and, on success,
// emits the events it produced in commit order.
func (e *Engine) apply(ctx context.Context, op string, fn func(ctx context.Context, r repomanager.Repositories) ([]models.Event, error)) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	var events []models.Event
	err := e.repos.Atomic(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		var err error
		events, err = fn(ctx, r)
		return err
	})
	e.observer.OperationCompleted(op, err, time.Since(start))

	if err != nil {
		if IsRejection(err) {
			e.logger.Debug(ctx, "operation rejected", "op", op, "reason", err)
		} else {
			e.logger.Error(ctx, "operation failed", "op", op, "error", err)
		}
		return err
	}

	for _, ev := range events {
		e.bus.publish(ev)
	}
	return nil
}

// IsRejection reports whether err is a domain precondition failure rather
// than a storage or internal fault.
func IsRejection(err error) bool {
	for _, target := range []error{
		common.ErrInvalidPrice, common.ErrInvalidAmount, common.ErrInsufficientStake,
		common.ErrInsufficientAllowance, common.ErrInsufficientBalance,
		common.ErrListingNotActive, common.ErrNotAuthorized, common.ErrorNotFound,
		common.ErrGenesisDone, common.ErrInvalidContentRef, common.ErrInvalidContentKey,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// reserved reports whether identity is one of the engine's own accounts.
// Such identities can never act as callers.
func (e *Engine) reserved(identity string) bool {
	return identity == e.cfg.EngineAccount || identity == e.cfg.VaultAccount
}

// Publish locks the stake in the vault and creates an active listing.
func (e *Engine) Publish(ctx context.Context, publisher, contentRef string, price models.Amount) (models.ListingID, error) {
	if price <= 0 {
		return 0, common.ErrInvalidPrice
	}
	if e.reserved(publisher) {
		return 0, common.ErrNotAuthorized
	}

	var listing *models.Listing
	err := e.apply(ctx, OpPublish, func(ctx context.Context, r repomanager.Repositories) ([]models.Event, error) {
		led := ledger.New(r.Balances())

		allowance, err := led.Allowance(ctx, publisher, e.cfg.EngineAccount)
		if err != nil {
			return nil, err
		}
		if allowance < e.cfg.StakeAmount {
			return nil, common.ErrInsufficientStake
		}

		if err := led.TransferFrom(ctx, e.cfg.EngineAccount, publisher, e.cfg.VaultAccount, e.cfg.StakeAmount); err != nil {
			return nil, err
		}

		listing, err = registry.New(r.Listings()).Create(ctx, publisher, price, e.cfg.StakeAmount, contentRef)
		if err != nil {
			return nil, err
		}

		return []models.Event{{
			Kind:       models.EventListingPublished,
			ListingID:  listing.ID,
			Actor:      publisher,
			ContentRef: contentRef,
			IsActive:   true,
			At:         e.now().UTC(),
		}}, nil
	})
	if err != nil {
		return 0, err
	}

	e.logger.Info(ctx, "listing published", "listing_id", listing.ID, "publisher", publisher, "price", price)
	return listing.ID, nil
}

// BuyAccess pays the listing price to its publisher and deactivates the
// listing in the same unit, so each active period sells exactly once.
func (e *Engine) BuyAccess(ctx context.Context, buyer string, id models.ListingID) (*models.Purchase, error) {
	if e.reserved(buyer) {
		return nil, common.ErrNotAuthorized
	}

	var purchase *models.Purchase
	err := e.apply(ctx, OpBuyAccess, func(ctx context.Context, r repomanager.Repositories) ([]models.Event, error) {
		reg := registry.New(r.Listings())
		led := ledger.New(r.Balances())

		listing, err := reg.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if !listing.IsActive {
			return nil, common.ErrListingNotActive
		}

		allowance, err := led.Allowance(ctx, buyer, e.cfg.EngineAccount)
		if err != nil {
			return nil, err
		}
		if allowance < listing.Price {
			return nil, common.ErrInsufficientAllowance
		}

		if err := led.TransferFrom(ctx, e.cfg.EngineAccount, buyer, listing.Publisher, listing.Price); err != nil {
			return nil, err
		}
		if err := reg.SetActive(ctx, id, false); err != nil {
			return nil, err
		}

		purchase, err = r.Purchases().Create(ctx, &models.Purchase{
			ID:         e.newID(),
			Buyer:      buyer,
			ListingID:  id,
			ContentRef: listing.ContentRef,
			Price:      listing.Price,
		})
		if err != nil {
			return nil, err
		}

		at := e.now().UTC()
		return []models.Event{
			{
				Kind:       models.EventAccessPurchased,
				ListingID:  id,
				Actor:      buyer,
				ContentRef: listing.ContentRef,
				Purchase:   purchase,
				At:         at,
			},
			{
				Kind:      models.EventListingStatusChanged,
				ListingID: id,
				Actor:     buyer,
				IsActive:  false,
				At:        at,
			},
		}, nil
	})
	if err != nil {
		return nil, err
	}

	e.logger.Info(ctx, "access purchased", "listing_id", id, "buyer", buyer, "seq", purchase.Seq)
	return purchase, nil
}

// ToggleStatus flips the listing's active flag. Only the publisher may call
// it; it moves no value.
func (e *Engine) ToggleStatus(ctx context.Context, caller string, id models.ListingID) (bool, error) {
	var active bool
	err := e.apply(ctx, OpToggleStatus, func(ctx context.Context, r repomanager.Repositories) ([]models.Event, error) {
		reg := registry.New(r.Listings())

		listing, err := reg.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if listing.Publisher != caller {
			return nil, common.ErrNotAuthorized
		}

		active = !listing.IsActive
		if err := reg.SetActive(ctx, id, active); err != nil {
			return nil, err
		}

		return []models.Event{{
			Kind:      models.EventListingStatusChanged,
			ListingID: id,
			Actor:     caller,
			IsActive:  active,
			At:        e.now().UTC(),
		}}, nil
	})
	if err != nil {
		return false, err
	}

	e.logger.Info(ctx, "listing status changed", "listing_id", id, "active", active)
	return active, nil
}

// Transfer moves caller's tokens to to. Neither side may be a reserved
// account.
func (e *Engine) Transfer(ctx context.Context, caller, to string, amount models.Amount) error {
	if e.reserved(caller) || e.reserved(to) {
		return common.ErrNotAuthorized
	}
	return e.apply(ctx, OpTransfer, func(ctx context.Context, r repomanager.Repositories) ([]models.Event, error) {
		return nil, ledger.New(r.Balances()).Transfer(ctx, caller, to, amount)
	})
}

func (e *Engine) Approve(ctx context.Context, caller, spender string, amount models.Amount) error {
	if e.reserved(caller) {
		return common.ErrNotAuthorized
	}
	return e.apply(ctx, OpApprove, func(ctx context.Context, r repomanager.Repositories) ([]models.Event, error) {
		return nil, ledger.New(r.Balances()).Approve(ctx, caller, spender, amount)
	})
}

// TransferFrom spends caller's allowance over owner. The engine's own
// spender identity is never usable from outside, and reserved accounts
// cannot be credited.
func (e *Engine) TransferFrom(ctx context.Context, caller, owner, to string, amount models.Amount) error {
	if e.reserved(caller) || e.reserved(owner) || e.reserved(to) {
		return common.ErrNotAuthorized
	}
	return e.apply(ctx, OpTransferFrom, func(ctx context.Context, r repomanager.Repositories) ([]models.Event, error) {
		return nil, ledger.New(r.Balances()).TransferFrom(ctx, caller, owner, to, amount)
	})
}

// Genesis mints the initial supply. It succeeds only while total supply is
// zero; afterwards it returns common.ErrGenesisDone.
func (e *Engine) Genesis(ctx context.Context, allocations []Allocation) error {
	err := e.apply(ctx, OpGenesis, func(ctx context.Context, r repomanager.Repositories) ([]models.Event, error) {
		led := ledger.New(r.Balances())

		supply, err := led.TotalSupply(ctx)
		if err != nil {
			return nil, err
		}
		if supply != 0 {
			return nil, common.ErrGenesisDone
		}

		for _, a := range allocations {
			if err := led.Mint(ctx, a.Account, a.Amount); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		return err
	}

	e.logger.Info(ctx, "genesis applied", "allocations", len(allocations))
	return nil
}

// Subscribe streams committed events until ctx is done.
func (e *Engine) Subscribe(ctx context.Context) <-chan models.Event {
	return e.bus.Subscribe(ctx)
}
