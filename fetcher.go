package wikiloc

import "context"

// Fetcher retrieves raw HTML from article URLs.
// Implementations are expected to pace themselves politely; Wikipedia
// blocks clients that fetch without any delay between requests.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}
