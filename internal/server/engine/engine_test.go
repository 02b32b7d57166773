package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/stakemarket/internal/common"
	"github.com/dmitrijs2005/stakemarket/internal/logging"
	"github.com/dmitrijs2005/stakemarket/internal/server/models"
	"github.com/dmitrijs2005/stakemarket/internal/server/repositories/repomanager"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	engineAcc = "market"
	vaultAcc  = "market:vault"
)

type recordingObserver struct {
	mu  sync.Mutex
	ops map[string]int
}

func (o *recordingObserver) OperationCompleted(op string, err error, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.ops == nil {
		o.ops = map[string]int{}
	}
	key := op + ":ok"
	if err != nil {
		key = op + ":err"
	}
	o.ops[key]++
}

func newTestEngine(t *testing.T, stake models.Amount, balances map[string]models.Amount, opts ...Option) *Engine {
	t.Helper()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := New(repomanager.NewMemoryRepositoryManager(), Config{
		StakeAmount:   stake,
		EngineAccount: engineAcc,
		VaultAccount:  vaultAcc,
	}, logger, opts...)

	var allocs []Allocation
	for acc, amount := range balances {
		allocs = append(allocs, Allocation{Account: acc, Amount: amount})
	}
	require.NoError(t, e.Genesis(context.Background(), allocs))
	return e
}

func balanceOf(t *testing.T, e *Engine, acc string) models.Amount {
	t.Helper()
	b, err := e.BalanceOf(context.Background(), acc)
	require.NoError(t, err)
	return b
}

// Walks the literal marketplace scenarios end to end on one engine.
func TestScenarios(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, 50, map[string]models.Amount{"P": 1000, "B": 500, "C": 500, "Q": 1000})

	// 1. publish with exact stake approval
	require.NoError(t, e.Approve(ctx, "P", engineAcc, 50))
	id, err := e.Publish(ctx, "P", "ref1", 100)
	require.NoError(t, err)
	assert.Equal(t, models.Amount(950), balanceOf(t, e, "P"))
	l, err := e.GetListing(ctx, id)
	require.NoError(t, err)
	assert.True(t, l.IsActive)
	assert.Equal(t, models.Amount(50), l.StakedAmount)
	assert.Equal(t, models.Amount(50), balanceOf(t, e, vaultAcc))

	// 2. buy
	events := e.Subscribe(ctx)
	require.NoError(t, e.Approve(ctx, "B", engineAcc, 100))
	p, err := e.BuyAccess(ctx, "B", id)
	require.NoError(t, err)
	assert.Equal(t, models.Amount(400), balanceOf(t, e, "B"))
	assert.Equal(t, models.Amount(1050), balanceOf(t, e, "P"))
	l, _ = e.GetListing(ctx, id)
	assert.False(t, l.IsActive)

	ev := <-events
	assert.Equal(t, models.EventAccessPurchased, ev.Kind)
	assert.Equal(t, "B", ev.Actor)
	assert.Equal(t, "ref1", ev.ContentRef)

	history, err := e.PurchasesOf(ctx, "B")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, p.ID, history[0].ID)
	assert.Equal(t, "ref1", history[0].ContentRef)

	// 3. second buyer is rejected with no balance change
	require.NoError(t, e.Approve(ctx, "C", engineAcc, 100))
	_, err = e.BuyAccess(ctx, "C", id)
	assert.ErrorIs(t, err, common.ErrListingNotActive)
	assert.Equal(t, models.Amount(500), balanceOf(t, e, "C"))
	assert.Equal(t, models.Amount(1050), balanceOf(t, e, "P"))

	// 4. toggle by publisher relists; toggle by buyer is refused
	_, err = e.ToggleStatus(ctx, "B", id)
	assert.ErrorIs(t, err, common.ErrNotAuthorized)
	active, err := e.ToggleStatus(ctx, "P", id)
	require.NoError(t, err)
	assert.True(t, active)

	// 5. insufficient stake approval
	require.NoError(t, e.Approve(ctx, "Q", engineAcc, 30))
	before, _ := e.ListAll(ctx)
	_, err = e.Publish(ctx, "Q", "ref-q", 10)
	assert.ErrorIs(t, err, common.ErrInsufficientStake)
	after, _ := e.ListAll(ctx)
	assert.Equal(t, before, after)
	assert.Equal(t, models.Amount(1000), balanceOf(t, e, "Q"))

	// 6. zero price
	require.NoError(t, e.Approve(ctx, "P", engineAcc, 50))
	_, err = e.Publish(ctx, "P", "ref", 0)
	assert.ErrorIs(t, err, common.ErrInvalidPrice)
	assert.Equal(t, models.Amount(1050), balanceOf(t, e, "P"))
	allowance, _ := e.Allowance(ctx, "P", engineAcc)
	assert.Equal(t, models.Amount(50), allowance)
}

func TestBuyAccess_FailedTransferLeavesListingActive(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, 10, map[string]models.Amount{"pub": 100, "poor": 5})

	require.NoError(t, e.Approve(ctx, "pub", engineAcc, 10))
	id, err := e.Publish(ctx, "pub", "ref", 50)
	require.NoError(t, err)

	require.NoError(t, e.Approve(ctx, "poor", engineAcc, 50))
	_, err = e.BuyAccess(ctx, "poor", id)
	require.ErrorIs(t, err, common.ErrInsufficientBalance)

	l, _ := e.GetListing(ctx, id)
	assert.True(t, l.IsActive)
	allowance, _ := e.Allowance(ctx, "poor", engineAcc)
	assert.Equal(t, models.Amount(50), allowance)
	history, _ := e.PurchasesOf(ctx, "poor")
	assert.Empty(t, history)
}

func TestBuyAccess_Errors(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, 0, map[string]models.Amount{"pub": 100, "b": 100})

	_, err := e.BuyAccess(ctx, "b", 404)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	id, err := e.Publish(ctx, "pub", "ref", 30)
	require.NoError(t, err)

	require.NoError(t, e.Approve(ctx, "b", engineAcc, 29))
	_, err = e.BuyAccess(ctx, "b", id)
	assert.ErrorIs(t, err, common.ErrInsufficientAllowance)

	_, err = e.ToggleStatus(ctx, "pub", 404)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestExclusivity_RequiresToggleBetweenSales(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, 0, map[string]models.Amount{"pub": 0, "b1": 100, "b2": 100})

	id, err := e.Publish(ctx, "pub", "ref", 10)
	require.NoError(t, err)
	require.NoError(t, e.Approve(ctx, "b1", engineAcc, 100))
	require.NoError(t, e.Approve(ctx, "b2", engineAcc, 100))

	_, err = e.BuyAccess(ctx, "b1", id)
	require.NoError(t, err)
	_, err = e.BuyAccess(ctx, "b1", id)
	require.ErrorIs(t, err, common.ErrListingNotActive)

	_, err = e.ToggleStatus(ctx, "pub", id)
	require.NoError(t, err)
	_, err = e.BuyAccess(ctx, "b2", id)
	require.NoError(t, err)

	ok, err := e.HasAccess(ctx, "b2", id)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, _ = e.HasAccess(ctx, "pub", id)
	assert.True(t, ok)
	ok, _ = e.HasAccess(ctx, "stranger", id)
	assert.False(t, ok)
}

func TestConcurrentBuyers_ExactlyOneWins(t *testing.T) {
	ctx := context.Background()
	const buyers = 32

	seed := map[string]models.Amount{"pub": 100}
	for i := 0; i < buyers; i++ {
		seed[buyerName(i)] = 100
	}
	e := newTestEngine(t, 10, seed)

	require.NoError(t, e.Approve(ctx, "pub", engineAcc, 10))
	id, err := e.Publish(ctx, "pub", "ref", 25)
	require.NoError(t, err)
	for i := 0; i < buyers; i++ {
		require.NoError(t, e.Approve(ctx, buyerName(i), engineAcc, 25))
	}
	supply, _ := e.TotalSupply(ctx)

	var wg sync.WaitGroup
	errs := make([]error, buyers)
	start := make(chan struct{})
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = e.BuyAccess(ctx, buyerName(i), id)
		}(i)
	}
	close(start)
	wg.Wait()

	wins, notActive := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, common.ErrListingNotActive):
			notActive++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, buyers-1, notActive)
	assert.Equal(t, models.Amount(90+25), balanceOf(t, e, "pub"))

	after, _ := e.TotalSupply(ctx)
	assert.Equal(t, supply, after)
}

func buyerName(i int) string {
	return "buyer-" + string(rune('A'+i%26)) + string(rune('a'+i/26))
}

func TestAuthorization_ToggleByStrangerLeavesState(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, 0, nil)

	id, err := e.Publish(ctx, "pub", "ref", 1)
	require.NoError(t, err)
	before, _ := e.GetListing(ctx, id)

	_, err = e.ToggleStatus(ctx, "mallory", id)
	require.ErrorIs(t, err, common.ErrNotAuthorized)

	after, _ := e.GetListing(ctx, id)
	assert.Empty(t, cmp.Diff(before, after))
}

func TestReservedAccountsCannotAct(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, 10, map[string]models.Amount{"pub": 100})

	require.NoError(t, e.Approve(ctx, "pub", engineAcc, 10))
	_, err := e.Publish(ctx, "pub", "ref", 5)
	require.NoError(t, err)

	assert.ErrorIs(t, e.Transfer(ctx, vaultAcc, "thief", 10), common.ErrNotAuthorized)
	assert.ErrorIs(t, e.TransferFrom(ctx, engineAcc, "pub", "thief", 1), common.ErrNotAuthorized)
	assert.ErrorIs(t, e.Approve(ctx, vaultAcc, "thief", 10), common.ErrNotAuthorized)
	_, err = e.Publish(ctx, engineAcc, "ref", 5)
	assert.ErrorIs(t, err, common.ErrNotAuthorized)

	// credits to the vault or engine accounts would skew the stake ledger
	assert.ErrorIs(t, e.Transfer(ctx, "pub", vaultAcc, 1), common.ErrNotAuthorized)
	assert.ErrorIs(t, e.Transfer(ctx, "pub", engineAcc, 1), common.ErrNotAuthorized)
	require.NoError(t, e.Approve(ctx, "pub", "helper", 10))
	assert.ErrorIs(t, e.TransferFrom(ctx, "helper", "pub", vaultAcc, 1), common.ErrNotAuthorized)
	assert.ErrorIs(t, e.TransferFrom(ctx, "helper", "pub", engineAcc, 1), common.ErrNotAuthorized)

	vault, _ := e.VaultBalance(ctx)
	assert.Equal(t, models.Amount(10), vault)
	assert.Equal(t, models.Amount(90), balanceOf(t, e, "pub"))
}

func TestTransferAndTransferFrom(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, 0, map[string]models.Amount{"alice": 100})

	require.NoError(t, e.Transfer(ctx, "alice", "bob", 40))
	require.NoError(t, e.Approve(ctx, "bob", "carol", 15))
	require.NoError(t, e.TransferFrom(ctx, "carol", "bob", "dave", 10))
	assert.ErrorIs(t, e.TransferFrom(ctx, "carol", "bob", "dave", 10), common.ErrInsufficientAllowance)
	assert.ErrorIs(t, e.Transfer(ctx, "alice", "bob", 61), common.ErrInsufficientBalance)

	assert.Equal(t, models.Amount(60), balanceOf(t, e, "alice"))
	assert.Equal(t, models.Amount(30), balanceOf(t, e, "bob"))
	assert.Equal(t, models.Amount(10), balanceOf(t, e, "dave"))
	supply, _ := e.TotalSupply(ctx)
	assert.Equal(t, models.Amount(100), supply)
}

func TestGenesis_OnlyOnce(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, 0, map[string]models.Amount{"deployer": 1000})

	err := e.Genesis(ctx, []Allocation{{Account: "deployer", Amount: 1000}})
	assert.ErrorIs(t, err, common.ErrGenesisDone)
	assert.Equal(t, models.Amount(1000), balanceOf(t, e, "deployer"))
}

func TestListAll_Idempotent(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, 0, nil)

	for i := 0; i < 5; i++ {
		_, err := e.Publish(ctx, "pub", "ref", models.Amount(i+1))
		require.NoError(t, err)
	}

	first, err := e.ListAll(ctx)
	require.NoError(t, err)
	second, err := e.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, first, 5)
	for i := 1; i < len(first); i++ {
		assert.Less(t, first[i-1], first[i])
	}

	details, _ := e.Listings(ctx)
	require.Len(t, details, 5)
	mine, _ := e.ListByPublisher(ctx, "pub")
	assert.Len(t, mine, 5)
}

func TestObserverAndEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	obs := &recordingObserver{}
	bus := NewBus(8)
	e := newTestEngine(t, 0, nil, WithObserver(obs), WithBus(bus))
	events := e.Subscribe(ctx)

	id, err := e.Publish(ctx, "pub", "ref", 3)
	require.NoError(t, err)
	_, _ = e.ToggleStatus(ctx, "nobody", id)
	_, err = e.ToggleStatus(ctx, "pub", id)
	require.NoError(t, err)

	first := <-events
	second := <-events
	assert.Equal(t, models.EventListingPublished, first.Kind)
	assert.Equal(t, models.EventListingStatusChanged, second.Kind)
	assert.False(t, second.IsActive)

	obs.mu.Lock()
	assert.Equal(t, 1, obs.ops[OpPublish+":ok"])
	assert.Equal(t, 1, obs.ops[OpToggleStatus+":err"])
	assert.Equal(t, 1, obs.ops[OpToggleStatus+":ok"])
	obs.mu.Unlock()
}

func TestRegisterContentKey_FirstWriterWins(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, 0, map[string]models.Amount{"alice": 1})
	key := []byte("0123456789abcdef0123456789abcdef")

	require.NoError(t, e.RegisterContentKey(ctx, "alice", "bafy", key))
	require.NoError(t, e.RegisterContentKey(ctx, "alice", "bafy", key))

	assert.ErrorIs(t, e.RegisterContentKey(ctx, "mallory", "bafy", key), common.ErrNotAuthorized)
	assert.ErrorIs(t, e.RegisterContentKey(ctx, "alice", "bafy", []byte("other")), common.ErrNotAuthorized)

	got, err := e.ContentKey(ctx, "bafy")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Owner)
	assert.Equal(t, key, got.Key)
}

func TestRegisterContentKey_Validation(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, 0, map[string]models.Amount{"alice": 1})

	assert.ErrorIs(t, e.RegisterContentKey(ctx, "alice", "", []byte{1}), common.ErrInvalidContentRef)
	assert.ErrorIs(t, e.RegisterContentKey(ctx, "alice", "bafy", nil), common.ErrInvalidContentKey)
	assert.ErrorIs(t, e.RegisterContentKey(ctx, vaultAcc, "bafy", []byte{1}), common.ErrNotAuthorized)

	_, err := e.ContentKey(ctx, "bafy")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestAccounts_ListsLedger(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, 10, map[string]models.Amount{"alice": 100, "bob": 5})
	require.NoError(t, e.Approve(ctx, "alice", engineAcc, 10))
	_, err := e.Publish(ctx, "alice", "ref", 5)
	require.NoError(t, err)

	accounts, err := e.Accounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Account{
		{ID: "alice", Balance: 90},
		{ID: "bob", Balance: 5},
		{ID: vaultAcc, Balance: 10},
	}, accounts)
}
