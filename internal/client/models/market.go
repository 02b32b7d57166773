package models

import "time"

// Listing is the client view of a market listing.
type Listing struct {
	ID           int64
	Publisher    string
	Price        int64
	IsActive     bool
	StakedAmount int64
	ContentRef   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Event is one committed market event received from the server stream.
type Event struct {
	Kind       string
	ListingID  int64
	Actor      string
	ContentRef string
	IsActive   bool
	Purchase   *Purchase
	At         time.Time
}

// Stake is the publish stake and the spender it must be approved to.
type Stake struct {
	Amount        int64
	EngineAccount string
}

// Presigned is a time-limited object-store URL. Headers must accompany the
// request. ContentKey is set on downloads the caller may decrypt.
type Presigned struct {
	URL        string
	Key        string
	ExpiresAt  time.Time
	Headers    map[string]string
	ContentKey []byte
}
