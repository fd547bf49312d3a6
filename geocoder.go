package wikiloc

import "context"

// Geocoder resolves a free-text address to a coordinate through an
// external lookup service. Provider fallback is internal to the
// implementation; callers see a single lookup.
type Geocoder interface {
	// Geocode resolves the address and returns a coordinate tagged with
	// Method "geocoding" and the provider identifier in Source.
	// Returns ENOTFOUND when every provider yields nothing.
	Geocode(ctx context.Context, address string) (*Coordinate, error)
}
