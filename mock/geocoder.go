package mock

import (
	"context"

	wikiloc "github.com/jannetolppanen/wikipedia-universal-location-scraper"
)

var _ wikiloc.Geocoder = (*Geocoder)(nil)

// Geocoder is a mock implementation of wikiloc.Geocoder.
type Geocoder struct {
	GeocodeFn func(ctx context.Context, address string) (*wikiloc.Coordinate, error)
}

func (g *Geocoder) Geocode(ctx context.Context, address string) (*wikiloc.Coordinate, error) {
	return g.GeocodeFn(ctx, address)
}
