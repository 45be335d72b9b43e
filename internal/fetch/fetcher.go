// Package fetch downloads and decodes remote image assets.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
)

// Error describes a failed asset fetch: unreachable URL, non-2xx status or
// undecodable payload. The background fetch surfaces it as a client error;
// logo fetches absorb it.
type Error struct {
	URL string
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("fetch %s: %v", e.URL, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// maxAssetBytes caps a single asset download (32 MiB).
const maxAssetBytes = 32 << 20

// ImageFetcher retrieves images over HTTP with a bounded timeout.
type ImageFetcher struct {
	client *http.Client
}

// NewImageFetcher creates a fetcher whose requests give up after timeout.
func NewImageFetcher(timeout time.Duration) *ImageFetcher {
	return &ImageFetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch downloads the URL and decodes it into a pixel buffer. Every failure
// mode comes back as *Error.
func (f *ImageFetcher) Fetch(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{URL: url, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetBytes))
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}

	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, &Error{URL: url, Err: fmt.Errorf("decode image: %w", err)}
	}
	return img, nil
}
