package mock

import (
	wikiloc "github.com/jannetolppanen/wikipedia-universal-location-scraper"
)

var _ wikiloc.CoordinateExtractor = (*CoordinateExtractor)(nil)

// CoordinateExtractor is a mock implementation of wikiloc.CoordinateExtractor.
type CoordinateExtractor struct {
	ExtractCoordinatesFn func(html string) (*wikiloc.Coordinate, error)
}

func (e *CoordinateExtractor) ExtractCoordinates(html string) (*wikiloc.Coordinate, error) {
	return e.ExtractCoordinatesFn(html)
}

var _ wikiloc.AddressExtractor = (*AddressExtractor)(nil)

// AddressExtractor is a mock implementation of wikiloc.AddressExtractor.
type AddressExtractor struct {
	ExtractAddressFn func(html string) (*wikiloc.AddressInfo, error)
}

func (e *AddressExtractor) ExtractAddress(html string) (*wikiloc.AddressInfo, error) {
	return e.ExtractAddressFn(html)
}
