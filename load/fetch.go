/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package load

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/t0rst/brandkit/internal/version"
)

const (
	// DefaultTimeout bounds a single document fetch.
	DefaultTimeout = 15 * time.Second

	// DefaultMaxSize caps a fetched brand document at 4 MB.
	DefaultMaxSize int64 = 4 << 20
)

// Fetcher retrieves raw brand document bytes from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches brand documents over HTTP. Responses over the size cap
// are rejected, as are HTML responses (an error page or captive portal served
// with a 200 is not a document).
type HTTPFetcher struct {
	maxSize int64
	client  *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher. A non-positive maxSize selects
// DefaultMaxSize.
func NewHTTPFetcher(maxSize int64) *HTTPFetcher {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &HTTPFetcher{maxSize: maxSize, client: &http.Client{}}
}

// Fetch retrieves the brand document at url.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for brand document %s: %w", url, err)
	}
	req.Header.Set("User-Agent", "brandkit/"+version.Get())
	req.Header.Set("Accept", "application/json, application/yaml, text/plain, */*")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching brand document %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("brand document %s: %s", url, resp.Status)
	}
	if ct := resp.Header.Get("Content-Type"); strings.HasPrefix(ct, "text/html") {
		return nil, fmt.Errorf("brand document %s: server returned %s", url, ct)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading brand document %s: %w", url, err)
	}
	if int64(len(body)) > f.maxSize {
		return nil, fmt.Errorf("brand document %s exceeds %d bytes", url, f.maxSize)
	}
	return body, nil
}
