// Package content issues presigned S3 URLs for listing content. Blobs are
// keyed by the CID the client computed, so the bucket is content-addressed.
package content

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/stakemarket/internal/common"
	"github.com/dmitrijs2005/stakemarket/internal/contentref"
	"github.com/dmitrijs2005/stakemarket/internal/cryptox"
	"github.com/dmitrijs2005/stakemarket/internal/server/config"
	"github.com/dmitrijs2005/stakemarket/internal/server/models"
	mh "github.com/multiformats/go-multihash"
)

// Seams over the AWS SDK constructors.
var (
	loadDefaultAWSConfig  = awsconfig.LoadDefaultConfig
	newS3ClientFromConfig = s3.NewFromConfig
	newS3PresignClient    = func(c *s3.Client) Presigner {
		return s3.NewPresignClient(c)
	}
)

// Presigner is the subset of *s3.PresignClient the service uses.
type Presigner interface {
	PresignPutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// AccessChecker answers whether an identity may read a listing's content.
type AccessChecker interface {
	GetListing(ctx context.Context, id models.ListingID) (*models.Listing, error)
	HasAccess(ctx context.Context, identity string, id models.ListingID) (bool, error)
}

// KeyStore holds the content keys bound to uploaded blobs.
type KeyStore interface {
	RegisterContentKey(ctx context.Context, owner, pointer string, key []byte) error
	ContentKey(ctx context.Context, pointer string) (*models.ContentKey, error)
}

// Presigned is a time-limited URL for one object. Headers must be sent
// verbatim with the request; they are covered by the signature.
type Presigned struct {
	URL        string
	Key        string
	ExpiresAt  time.Time
	Headers    map[string]string
	ContentKey []byte
}

type Service struct {
	presigner Presigner
	access    AccessChecker
	keys      KeyStore
	bucket    string
	validity  time.Duration
	now       func() time.Time
}

func NewService(presigner Presigner, access AccessChecker, keys KeyStore, bucket string, validity time.Duration) *Service {
	return &Service{
		presigner: presigner,
		access:    access,
		keys:      keys,
		bucket:    bucket,
		validity:  validity,
		now:       time.Now,
	}
}

// signedHeaders drops Host, which the HTTP client derives from the URL.
func signedHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		if http.CanonicalHeaderKey(name) == "Host" || len(values) == 0 {
			continue
		}
		out[name] = values[0]
	}
	return out
}

// NewS3Presigner builds a presign client for an S3-compatible endpoint with
// static credentials.
func NewS3Presigner(ctx context.Context, cfg *config.Config) (Presigner, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3RootUser,
			cfg.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
		o.UsePathStyle = true
	})
	return newS3PresignClient(client), nil
}

// PresignUpload registers contentKey for pointer and returns a PUT URL for
// the blob. S3 verifies the body against the pointer's sha2-256 digest and
// refuses to replace an existing object, so an upload can only ever store
// the bytes the pointer names.
func (s *Service) PresignUpload(ctx context.Context, identity, pointer string, contentKey []byte) (*Presigned, error) {
	c, err := contentref.ParsePointer(pointer)
	if err != nil {
		return nil, common.ErrInvalidContentRef
	}
	decoded, err := mh.Decode(c.Hash())
	if err != nil || decoded.Code != mh.SHA2_256 {
		return nil, common.ErrInvalidContentRef
	}
	if len(contentKey) != cryptox.KeySize {
		return nil, common.ErrInvalidContentKey
	}
	if err := s.keys.RegisterContentKey(ctx, identity, pointer, contentKey); err != nil {
		return nil, err
	}
	key := contentref.ObjectKey(c)

	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:         aws.String(s.bucket),
		Key:            aws.String(key),
		ChecksumSHA256: aws.String(base64.StdEncoding.EncodeToString(decoded.Digest)),
		IfNoneMatch:    aws.String("*"),
	}, s3.WithPresignExpires(s.validity))
	if err != nil {
		return nil, fmt.Errorf("presign put: %w", err)
	}

	return &Presigned{
		URL:       req.URL,
		Key:       key,
		ExpiresAt: s.now().Add(s.validity),
		Headers:   signedHeaders(req.SignedHeader),
	}, nil
}

// PresignDownload returns a GET URL for a listing's content if identity is
// its publisher or a buyer. The content key is released with it when the
// listing's publisher is the identity that registered the key.
func (s *Service) PresignDownload(ctx context.Context, identity string, id models.ListingID) (*Presigned, error) {
	ok, err := s.access.HasAccess(ctx, identity, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.ErrNoAccess
	}

	listing, err := s.access.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}

	pointer, _ := contentref.Split(listing.ContentRef)
	c, err := contentref.ParsePointer(pointer)
	if err != nil {
		return nil, common.ErrInvalidContentRef
	}
	key := contentref.ObjectKey(c)

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.validity))
	if err != nil {
		return nil, fmt.Errorf("presign get: %w", err)
	}

	out := &Presigned{
		URL:       req.URL,
		Key:       key,
		ExpiresAt: s.now().Add(s.validity),
		Headers:   signedHeaders(req.SignedHeader),
	}

	ck, err := s.keys.ContentKey(ctx, pointer)
	switch {
	case err == nil:
		if ck.Owner == listing.Publisher {
			out.ContentKey = ck.Key
		}
	case !errors.Is(err, common.ErrorNotFound):
		return nil, err
	}
	return out, nil
}
