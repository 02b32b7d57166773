package models

import "time"

// ContentKey is the symmetric key sealing one content blob, bound to the
// blob's pointer and to the identity that uploaded it. The first
// registration for a pointer wins.
type ContentKey struct {
	Pointer   string
	Owner     string
	Key       []byte
	CreatedAt time.Time
}
