package models

import "time"

// ListingID identifies a listing. IDs are assigned at publish time in
// strictly increasing order and never reused.
type ListingID = int64

// Listing is a single sellable unit referencing one content item.
type Listing struct {
	ID           ListingID
	Publisher    string
	Price        Amount
	IsActive     bool
	StakedAmount Amount
	// ContentRef is opaque to the ledger.
	ContentRef string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
