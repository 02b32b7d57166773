// Package contentref builds and reads content references of the form
// "<pointer>#<display name>", where pointer is a CIDv1 (raw codec,
// sha2-256) of the stored blob. The market engine treats references as
// opaque strings; only clients and the content presigner use this package.
package contentref

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
)

const (
	Separator = "#"
	keyPrefix = "content/"
)

var ErrInvalidPointer = errors.New("invalid content pointer")

// Compose joins a pointer and a display name. An empty name yields the bare
// pointer.
func Compose(pointer, name string) string {
	if name == "" {
		return pointer
	}
	return pointer + Separator + name
}

// Split is the inverse of Compose. The name may itself contain Separator.
func Split(ref string) (pointer, name string) {
	pointer, name, _ = strings.Cut(ref, Separator)
	return pointer, name
}

// Sum reads r to the end and returns the CID of its bytes.
func Sum(r io.Reader) (cid.Cid, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return cid.Undef, fmt.Errorf("hash content: %w", err)
	}

	digest, err := mh.Encode(h.Sum(nil), mh.SHA2_256)
	if err != nil {
		return cid.Undef, fmt.Errorf("encode multihash: %w", err)
	}
	return cid.NewCidV1(cid.Raw, digest), nil
}

// ParsePointer validates a pointer string and returns its CID.
func ParsePointer(pointer string) (cid.Cid, error) {
	c, err := cid.Decode(pointer)
	if err != nil {
		return cid.Undef, fmt.Errorf("%w: %v", ErrInvalidPointer, err)
	}
	return c, nil
}

// ObjectKey is the bucket key a blob is stored under.
func ObjectKey(c cid.Cid) string {
	return keyPrefix + c.String()
}
