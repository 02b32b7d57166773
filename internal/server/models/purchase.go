package models

import "time"

// Purchase is the durable record of one successful buy. Records are
// append-only: never updated, never deleted.
type Purchase struct {
	ID         string
	Seq        int64
	Buyer      string
	ListingID  ListingID
	ContentRef string
	Price      Amount
	CreatedAt  time.Time
}
