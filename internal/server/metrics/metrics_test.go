package metrics

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/stakemarket/internal/common"
	"github.com/dmitrijs2005/stakemarket/internal/server/engine"
	"github.com/dmitrijs2005/stakemarket/internal/server/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeState struct{}

func (fakeState) ListAll(context.Context) ([]models.ListingID, error) {
	return []models.ListingID{1, 2, 3}, nil
}

func (fakeState) VaultBalance(context.Context) (models.Amount, error) { return 150, nil }

func (fakeState) TotalSupply(context.Context) (models.Amount, error) {
	return 0, errors.New("db down")
}

func (fakeState) Accounts(context.Context) ([]models.Account, error) {
	return []models.Account{{ID: "alice", Balance: 10}, {ID: "market:vault", Balance: 150}}, nil
}

func TestOperationCompleted_Outcomes(t *testing.T) {
	m := New()

	m.OperationCompleted(engine.OpBuyAccess, nil, time.Millisecond)
	m.OperationCompleted(engine.OpBuyAccess, common.ErrListingNotActive, time.Millisecond)
	m.OperationCompleted(engine.OpBuyAccess, common.ErrListingNotActive, time.Millisecond)
	m.OperationCompleted(engine.OpPublish, errors.New("connection reset"), time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues(engine.OpBuyAccess, "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.operations.WithLabelValues(engine.OpBuyAccess, "rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues(engine.OpPublish, "error")))
}

func TestHandler_ExposesStateGauges(t *testing.T) {
	m := New()
	m.RegisterState(fakeState{})
	m.OperationCompleted(engine.OpPublish, nil, time.Millisecond)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(body)
	assert.Contains(t, text, "stakemarket_listings 3")
	assert.Contains(t, text, "stakemarket_vault_balance 150")
	assert.Contains(t, text, "stakemarket_total_supply -1")
	assert.Contains(t, text, "stakemarket_accounts 2")
	assert.Contains(t, text, `stakemarket_operations_total{op="publish",outcome="ok"} 1`)
}
