package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/stakemarket/internal/client/client"
	"github.com/dmitrijs2005/stakemarket/internal/client/models"
	"github.com/dmitrijs2005/stakemarket/internal/client/repositories/keys"
	"github.com/dmitrijs2005/stakemarket/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/stakemarket/internal/client/repositories/purchases"
	"github.com/dmitrijs2005/stakemarket/internal/common"
	"github.com/dmitrijs2005/stakemarket/internal/contentref"
	"github.com/dmitrijs2005/stakemarket/internal/cryptox"
	"github.com/dmitrijs2005/stakemarket/internal/filex"
	"github.com/dmitrijs2005/stakemarket/internal/netx"
)

// Test seams for the object-store transfers.
var (
	uploadBlob   = netx.UploadToPresignedURL
	downloadBlob = netx.DownloadFromPresignedURL
)

// Download describes a fetched listing blob.
type Download struct {
	Path      string
	Decrypted bool
}

// MarketService runs the multi-step market workflows: sealing and uploading
// content before publish, topping up the engine allowance before paying, and
// keeping the local purchase cache current.
type MarketService struct {
	client    client.Client
	meta      metadata.Repository
	purchases purchases.Repository
	keys      keys.Repository
	now       func() time.Time
}

func NewMarketService(c client.Client, repos *client.Repositories) *MarketService {
	return &MarketService{
		client:    c,
		meta:      repos.Metadata,
		purchases: repos.Purchases,
		keys:      repos.Keys,
		now:       time.Now,
	}
}

// ensureAllowance approves the engine account for at least amount on
// behalf of owner.
func (s *MarketService) ensureAllowance(ctx context.Context, owner, engine string, amount int64) error {
	current, err := s.client.Allowance(ctx, owner, engine)
	if err != nil {
		return err
	}
	if current >= amount {
		return nil
	}
	return s.client.Approve(ctx, engine, amount)
}

// PublishFile seals the file at path under a fresh key, uploads it under
// its content id and lists it at price. The key is registered with the
// server, which releases it to buyers, and kept in the local cache.
func (s *MarketService) PublishFile(ctx context.Context, identity, path, name string, price int64) (int64, error) {
	if price <= 0 {
		return 0, common.ErrInvalidPrice
	}

	plaintext, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	if name == "" {
		name = filepath.Base(path)
	}

	key, err := cryptox.NewKey()
	if err != nil {
		return 0, err
	}
	sealed, err := cryptox.Seal(plaintext, key)
	if err != nil {
		return 0, err
	}

	c, err := contentref.Sum(bytes.NewReader(sealed))
	if err != nil {
		return 0, err
	}
	pointer := c.String()

	presigned, err := s.client.PresignUpload(ctx, pointer, key)
	if err != nil {
		return 0, err
	}
	if err := uploadBlob(ctx, presigned.URL, sealed, presigned.Headers); err != nil {
		return 0, fmt.Errorf("upload: %w", err)
	}
	if err := s.keys.Put(ctx, &models.ContentKey{Pointer: pointer, Key: key}); err != nil {
		return 0, err
	}

	stake, err := s.client.StakeAmount(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.ensureAllowance(ctx, identity, stake.EngineAccount, stake.Amount); err != nil {
		return 0, err
	}

	return s.client.Publish(ctx, contentref.Compose(pointer, name), price)
}

// Buy pays for a listing and records the purchase locally.
func (s *MarketService) Buy(ctx context.Context, identity string, listingID int64) (*models.Purchase, error) {
	l, err := s.client.GetListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if !l.IsActive {
		return nil, common.ErrListingNotActive
	}
	stake, err := s.client.StakeAmount(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.ensureAllowance(ctx, identity, stake.EngineAccount, l.Price); err != nil {
		return nil, err
	}

	p, err := s.client.BuyAccess(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if err := s.purchases.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Purchases returns the identity's purchase history. When the server is
// unreachable the cached copy is returned and fromCache is set.
func (s *MarketService) Purchases(ctx context.Context, identity string) (list []*models.Purchase, fromCache bool, err error) {
	remote, err := s.client.PurchasesOf(ctx, identity)
	if errors.Is(err, client.ErrUnavailable) {
		cached, cerr := s.purchases.ListByBuyer(ctx, identity)
		if cerr != nil {
			return nil, true, cerr
		}
		if len(cached) == 0 {
			return nil, true, client.ErrLocalDataNotAvailable
		}
		return cached, true, nil
	}
	if err != nil {
		return nil, false, err
	}

	for _, p := range remote {
		if err := s.purchases.Save(ctx, p); err != nil {
			return nil, false, err
		}
	}
	if err := s.meta.SetInt64(ctx, metadata.KeyLastSyncedAt, s.now().Unix()); err != nil {
		return nil, false, err
	}
	return remote, false, nil
}

// LastSynced reports when purchases were last fetched from the server. The
// zero time means never.
func (s *MarketService) LastSynced(ctx context.Context) (time.Time, error) {
	ts, err := s.meta.GetInt64(ctx, metadata.KeyLastSyncedAt)
	if err != nil || ts == 0 {
		return time.Time{}, err
	}
	return time.Unix(ts, 0), nil
}

// RecordEvent caches a purchase seen on the event stream if it belongs to
// identity. It reports whether anything was stored.
func (s *MarketService) RecordEvent(ctx context.Context, identity string, ev *models.Event) (bool, error) {
	if ev.Purchase == nil || ev.Purchase.Buyer != identity {
		return false, nil
	}
	if err := s.purchases.Save(ctx, ev.Purchase); err != nil {
		return false, err
	}
	return true, nil
}

// Download fetches a listing's blob into dir and opens it with the key the
// server released, or with the local key when this machine published it.
// Without either key the sealed bytes are kept.
func (s *MarketService) Download(ctx context.Context, listingID int64, dir string) (*Download, error) {
	l, err := s.client.GetListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	pointer, name := contentref.Split(l.ContentRef)
	if name == "" {
		name = pointer
	}

	presigned, err := s.client.PresignDownload(ctx, listingID)
	if err != nil {
		return nil, err
	}
	blob, err := downloadBlob(ctx, presigned.URL)
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}

	dir, err = filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}

	key, err := s.contentKey(ctx, pointer, presigned)
	if err != nil {
		return nil, err
	}

	out := &Download{}
	if key == nil {
		out.Path = filepath.Join(dir, filepath.Base(name)+".sealed")
	} else {
		blob, err = cryptox.Open(blob, key)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", pointer, err)
		}
		out.Path = filepath.Join(dir, filepath.Base(name))
		out.Decrypted = true
		if err := s.keys.Put(ctx, &models.ContentKey{Pointer: pointer, Key: key}); err != nil {
			return nil, err
		}
	}

	if err := filex.WriteFileAtomic(out.Path, blob); err != nil {
		return nil, err
	}
	return out, nil
}

// contentKey picks the server-released key and falls back to the local
// cache. It returns nil when neither has one.
func (s *MarketService) contentKey(ctx context.Context, pointer string, presigned *models.Presigned) ([]byte, error) {
	if len(presigned.ContentKey) > 0 {
		return presigned.ContentKey, nil
	}
	k, err := s.keys.Get(ctx, pointer)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return k.Key, nil
}
