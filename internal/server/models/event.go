package models

import "time"

// EventKind names a domain event emitted by the transaction engine.
type EventKind string

const (
	EventListingPublished     EventKind = "listing_published"
	EventAccessPurchased      EventKind = "access_purchased"
	EventListingStatusChanged EventKind = "listing_status_changed"
)

// Event is a committed state change broadcast to subscribers. Only the
// fields relevant to Kind are set.
type Event struct {
	Kind       EventKind
	ListingID  ListingID
	Actor      string
	ContentRef string
	IsActive   bool
	Purchase   *Purchase
	At         time.Time
}
