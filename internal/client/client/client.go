package client

import (
	"context"

	"github.com/dmitrijs2005/stakemarket/internal/client/models"
)

// Client is the market API as the CLI sees it. Calls that act on behalf of
// a user carry the access token set with SetAccessToken.
type Client interface {
	Close() error
	SetAccessToken(token string)
	Ping(ctx context.Context) error

	Publish(ctx context.Context, contentRef string, price int64) (int64, error)
	BuyAccess(ctx context.Context, listingID int64) (*models.Purchase, error)
	ToggleStatus(ctx context.Context, listingID int64) (bool, error)
	Transfer(ctx context.Context, to string, amount int64) error
	Approve(ctx context.Context, spender string, amount int64) error
	TransferFrom(ctx context.Context, owner, to string, amount int64) error

	GetListing(ctx context.Context, listingID int64) (*models.Listing, error)
	ListListings(ctx context.Context) ([]*models.Listing, error)
	ListByPublisher(ctx context.Context, publisher string) ([]*models.Listing, error)
	StakeAmount(ctx context.Context) (*models.Stake, error)
	BalanceOf(ctx context.Context, account string) (int64, error)
	Allowance(ctx context.Context, owner, spender string) (int64, error)
	PurchasesOf(ctx context.Context, buyer string) ([]*models.Purchase, error)

	PresignUpload(ctx context.Context, pointer string, contentKey []byte) (*models.Presigned, error)
	PresignDownload(ctx context.Context, listingID int64) (*models.Presigned, error)

	WatchEvents(ctx context.Context, handle func(*models.Event) error) error
}
