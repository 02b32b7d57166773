// Package netx moves content blobs to and from presigned object-store URLs.
package netx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// MaxAttempts bounds retries of a single transfer.
const MaxAttempts = 4

var httpClient = &http.Client{Timeout: 5 * time.Minute}

// newBackOff is a test seam.
var newBackOff = func() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 250 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	return b
}

// do runs req until it succeeds, hits a 4xx, or retries run out. Network
// errors and 5xx responses are retried.
func do(ctx context.Context, newReq func() (*http.Request, error), okStatus int) ([]byte, error) {
	var body []byte

	op := func() error {
		req, err := newReq()
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		if resp.StatusCode != okStatus {
			err := fmt.Errorf("%s failed: %s; body: %s", req.Method, resp.Status, string(b))
			if resp.StatusCode < http.StatusInternalServerError {
				return backoff.Permanent(err)
			}
			return err
		}

		body = b
		return nil
	}

	b := backoff.WithContext(backoff.WithMaxRetries(newBackOff(), MaxAttempts-1), ctx)
	if err := backoff.Retry(op, b); err != nil {
		return nil, err
	}
	return body, nil
}

// UploadToPresignedURL PUTs data to a presigned URL. headers are the
// signed headers the URL was issued with and are sent verbatim.
func UploadToPresignedURL(ctx context.Context, url string, data []byte, headers map[string]string) error {
	_, err := do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/octet-stream")
		for name, value := range headers {
			req.Header.Set(name, value)
		}
		return req, nil
	}, http.StatusOK)
	return err
}

// DownloadFromPresignedURL GETs the object behind a presigned URL.
func DownloadFromPresignedURL(ctx context.Context, url string) ([]byte, error) {
	return do(ctx, func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	}, http.StatusOK)
}
