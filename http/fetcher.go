// Package http provides the HTTP-facing collaborators: the Wikipedia page
// fetcher and the external geocoding client.
package http

import (
	"context"
	"io"
	"math/rand"
	"net/http"
	"time"

	wikiloc "github.com/jannetolppanen/wikipedia-universal-location-scraper"
	"golang.org/x/time/rate"
)

// DefaultUserAgent is a browser-style user-agent. Wikipedia serves reduced
// markup (and eventually blocks) clients with library-default agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// Default polite delay bounds before each page fetch. The randomized delay
// is a correctness requirement: removing it gets the client rate-limited.
const (
	DefaultMinDelay = 1 * time.Second
	DefaultMaxDelay = 3 * time.Second
)

// Ensure Fetcher implements wikiloc.Fetcher at compile time.
var _ wikiloc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves article HTML over plain HTTP, one page at a time.
// Every request is preceded by a randomized polite delay, with a token
// bucket capping the request rate at one per second.
type Fetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
	timeout   time.Duration
	minDelay  time.Duration
	maxDelay  time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithDelay sets the bounds of the randomized pre-request delay.
// Zero bounds disable the delay (used in tests).
func WithDelay(min, max time.Duration) Option {
	return func(f *Fetcher) {
		f.minDelay = min
		f.maxDelay = max
	}
}

// WithRateLimit sets the request-per-second ceiling.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithUserAgent overrides the user-agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new polite HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		limiter:   rate.NewLimiter(rate.Limit(1), 1),
		userAgent: DefaultUserAgent,
		timeout:   DefaultFetchTimeout,
		minDelay:  DefaultMinDelay,
		maxDelay:  DefaultMaxDelay,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. No retries: a
// failed fetch is reported to the caller, who skips the article.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := sleepJitter(ctx, f.minDelay, f.maxDelay); err != nil {
		return "", err
	}
	if err := f.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", wikiloc.Errorf(wikiloc.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", wikiloc.Errorf(wikiloc.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", wikiloc.Errorf(wikiloc.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", wikiloc.Errorf(wikiloc.EUNAVAILABLE, "read %s: %v", url, err)
	}

	return string(body), nil
}

// sleepJitter sleeps for a random duration in [min, max], honoring
// context cancellation.
func sleepJitter(ctx context.Context, min, max time.Duration) error {
	if min <= 0 && max <= 0 {
		return nil
	}
	d := min
	if max > min {
		d += time.Duration(rand.Int63n(int64(max - min)))
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
