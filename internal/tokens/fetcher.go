package tokens

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxDocumentSize caps how much of the response body is read.
const maxDocumentSize = 32 << 20

// Document is a fetched and parsed token document.
type Document struct {
	Source   string // URL the document was fetched from
	RootPath string // Envelope path the icon tree was read from
	Raw      []byte // Response body as received
	Root     Group  // Icon tree found at RootPath
}

// Fetcher retrieves the token document over HTTP.
type Fetcher struct {
	URL      string
	RootPath string
	client   *http.Client
}

// NewFetcher creates a new Fetcher. A zero timeout means no client timeout.
func NewFetcher(url, rootPath string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		URL:      url,
		RootPath: rootPath,
		client:   &http.Client{Timeout: timeout},
	}
}

// Fetch downloads the token document and parses its icon tree.
// Transport failures and non-2xx statuses wrap ErrFetch; invalid documents
// wrap ErrParse.
func (f *Fetcher) Fetch(ctx context.Context) (*Document, error) {
	raw, err := f.fetchRaw(ctx)
	if err != nil {
		return nil, err
	}

	root, err := Parse(raw, f.RootPath)
	if err != nil {
		return nil, err
	}

	return &Document{
		Source:   f.URL,
		RootPath: f.RootPath,
		Raw:      raw,
		Root:     root,
	}, nil
}

func (f *Fetcher) fetchRaw(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to send request: %w", ErrFetch, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: bad status %d: %s", ErrFetch, resp.StatusCode, string(raw))
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", ErrFetch, err)
	}
	return raw, nil
}
