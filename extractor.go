package wikiloc

// CoordinateExtractor runs coordinate-extraction strategies over a page.
type CoordinateExtractor interface {
	// ExtractCoordinates parses the HTML and returns the first coordinate
	// found by the strategy chain. Returns ENOTFOUND when no strategy
	// matches and EINVALID when the HTML cannot be parsed.
	ExtractCoordinates(html string) (*Coordinate, error)
}

// AddressExtractor locates a location/address field in a page's infobox.
type AddressExtractor interface {
	// ExtractAddress parses the HTML and returns the infobox address with
	// citation markers stripped. Returns ENOTFOUND when the page has no
	// labelled location row.
	ExtractAddress(html string) (*AddressInfo, error)
}
