// Package mock provides function-field test doubles for the domain
// interfaces.
package mock

import (
	"context"

	wikiloc "github.com/jannetolppanen/wikipedia-universal-location-scraper"
)

var _ wikiloc.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of wikiloc.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
