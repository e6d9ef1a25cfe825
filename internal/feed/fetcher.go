package feed

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/paper-hunter/paper-hunter/internal/apperr"
)

const defaultFetchTimeout = 20 * time.Second

// Fetcher retrieves the body at a URL, transparently serving cached payloads
// within the cache freshness window. Upstream feeds are outside our control,
// so every request is timeout-bounded.
type Fetcher struct {
	http  *http.Client
	cache Cache
}

type FetcherOption func(*Fetcher)

func NewFetcher(cache Cache, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		http: &http.Client{
			Timeout: defaultFetchTimeout,
		},
		cache: cache,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func WithHttpClient(httpClient *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.http = httpClient
	}
}

// Fetch returns the raw body at url, using the URL itself as cache key.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f.FetchWithKey(ctx, url, url)
}

// FetchWithKey fetches url but caches under an explicit key. Detail lookups
// use per-paper keys ("paper_<id>") independent from the feed-URL cache.
// Failed fetches are never cached.
func (f *Fetcher) FetchWithKey(ctx context.Context, url, key string) ([]byte, error) {
	if payload, ok := f.cache.Get(key); ok {
		slog.Debug("Serving feed payload from cache", "key", key)
		return payload, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperr.NewFetchWrap(url, err)
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, apperr.NewFetchWrap(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperr.NewFetch(url, resp.Status)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.NewFetchWrap(url, err)
	}

	f.cache.Put(key, payload)
	slog.Debug("Fetched fresh feed payload", "url", url, "bytes", len(payload))

	return payload, nil
}
