package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/stakemarket/internal/client/client"
	"github.com/dmitrijs2005/stakemarket/internal/client/models"
	"github.com/dmitrijs2005/stakemarket/internal/common"
	"github.com/dmitrijs2005/stakemarket/internal/contentref"
	"github.com/stretchr/testify/require"
)

const engineAccount = "engine"

// fakeClient records calls and keeps just enough state for the workflows.
type fakeClient struct {
	client.Client

	token      string
	allowances map[string]int64
	approvals  []int64
	listings   map[int64]*models.Listing
	purchases  []*models.Purchase
	published  []string
	uploads    map[string]string
	keys       map[string][]byte
	buyer      string

	pingErr      error
	purchasesErr error
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		allowances: map[string]int64{},
		listings:   map[int64]*models.Listing{},
		uploads:    map[string]string{},
		keys:       map[string][]byte{},
		buyer:      "bob",
	}
}

func (f *fakeClient) Close() error                   { return nil }
func (f *fakeClient) SetAccessToken(token string)    { f.token = token }
func (f *fakeClient) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeClient) StakeAmount(ctx context.Context) (*models.Stake, error) {
	return &models.Stake{Amount: 100, EngineAccount: engineAccount}, nil
}

func (f *fakeClient) Allowance(ctx context.Context, owner, spender string) (int64, error) {
	return f.allowances[owner+"/"+spender], nil
}

func (f *fakeClient) Approve(ctx context.Context, spender string, amount int64) error {
	f.approvals = append(f.approvals, amount)
	return nil
}

func (f *fakeClient) PresignUpload(ctx context.Context, pointer string, contentKey []byte) (*models.Presigned, error) {
	url := "https://bucket.example/" + pointer
	f.uploads[url] = pointer
	f.keys[pointer] = append([]byte(nil), contentKey...)
	return &models.Presigned{
		URL:       url,
		Key:       "content/" + pointer,
		ExpiresAt: time.Now().Add(time.Minute),
		Headers:   map[string]string{"If-None-Match": "*"},
	}, nil
}

func (f *fakeClient) PresignDownload(ctx context.Context, listingID int64) (*models.Presigned, error) {
	l, ok := f.listings[listingID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	pointer, _ := contentref.Split(l.ContentRef)
	out := &models.Presigned{URL: "https://bucket.example/" + pointer}
	// Keys are released only to buyers, as the server does.
	for _, p := range f.purchases {
		if p.ListingID == listingID && p.Buyer == f.buyer {
			out.ContentKey = f.keys[pointer]
		}
	}
	return out, nil
}

func (f *fakeClient) Publish(ctx context.Context, contentRef string, price int64) (int64, error) {
	f.published = append(f.published, contentRef)
	id := int64(len(f.published))
	f.listings[id] = &models.Listing{ID: id, Publisher: "alice", Price: price, IsActive: true, StakedAmount: 100, ContentRef: contentRef}
	return id, nil
}

func (f *fakeClient) GetListing(ctx context.Context, listingID int64) (*models.Listing, error) {
	l, ok := f.listings[listingID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return l, nil
}

func (f *fakeClient) BuyAccess(ctx context.Context, listingID int64) (*models.Purchase, error) {
	l := f.listings[listingID]
	p := &models.Purchase{
		ID:         "p" + time.Now().Format("150405.000000000"),
		Seq:        int64(len(f.purchases) + 1),
		Buyer:      f.buyer,
		ListingID:  listingID,
		ContentRef: l.ContentRef,
		Price:      l.Price,
		CreatedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	f.purchases = append(f.purchases, p)
	return p, nil
}

func (f *fakeClient) PurchasesOf(ctx context.Context, buyer string) ([]*models.Purchase, error) {
	if f.purchasesErr != nil {
		return nil, f.purchasesErr
	}
	var out []*models.Purchase
	for _, p := range f.purchases {
		if p.Buyer == buyer {
			out = append(out, p)
		}
	}
	return out, nil
}

func newTestRepos(t *testing.T) *client.Repositories {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return client.NewRepositories(db)
}
