// Package models defines client-side data models cached by the CLI.
package models

import "time"

// Purchase is a locally cached copy of a server purchase record. The cache
// lets "my purchases" work while the server is unreachable.
type Purchase struct {
	ID         string
	Seq        int64
	Buyer      string
	ListingID  int64
	ContentRef string
	Price      int64
	CreatedAt  time.Time
}

// ContentKey is the symmetric key a publisher sealed a blob with, indexed by
// the blob's content pointer.
type ContentKey struct {
	Pointer string
	Key     []byte
}
