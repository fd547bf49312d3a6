package wikiloc

// Coordinate formats.
const (
	FormatDMS     = "DMS"
	FormatDecimal = "decimal"
)

// MethodGeocoding tags coordinates obtained from an external geocoding
// provider rather than from the page itself.
const MethodGeocoding = "geocoding"

// Article represents a single Wikipedia article in the batch. Articles are
// created from the input JSON and mutated in place by the pipeline; they
// are never removed from the list.
type Article struct {
	Name          string      `json:"name"`
	WikipediaLink string      `json:"wikipedia_link"`
	Coordinates   *Coordinate `json:"coordinates,omitempty"`
	Address       string      `json:"address,omitempty"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.Name == "" {
		return Errorf(EINVALID, "article name required")
	}
	if a.WikipediaLink == "" {
		return Errorf(EINVALID, "article wikipedia link required")
	}
	return nil
}

// Coordinate is a decimal-degree geographic point together with provenance:
// the raw text it was parsed from and the extraction method that produced
// it. A coordinate is immutable once produced.
type Coordinate struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Format   string  `json:"format"`
	Original string  `json:"original"`
	Method   string  `json:"method"`

	// Source names the geocoding provider for geocoded coordinates.
	// Empty for coordinates extracted from the page itself.
	Source string `json:"source,omitempty"`
}

// Validate returns an error if the coordinate is out of range.
func (c *Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return Errorf(EINVALID, "latitude %v out of range [-90, 90]", c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return Errorf(EINVALID, "longitude %v out of range [-180, 180]", c.Lon)
	}
	return nil
}

// AddressInfo is the result of infobox address extraction. It is computed
// only when no coordinate strategy matched, and may be persisted as the
// article's address.
type AddressInfo struct {
	Text string

	// Detailed reports whether the address carries both a street number
	// and a comma-separated locality, the precondition for geocoding.
	Detailed bool
}

// Per-article outcome counters tracked by the batch orchestrator. At most
// one StatMethodN counter is nonzero per article: the first matching
// strategy wins and the rest are skipped.
const (
	StatMethod1         = "method_1"
	StatMethod2         = "method_2"
	StatMethod3         = "method_3"
	StatMethod4         = "method_4"
	StatMethod5         = "method_5"
	StatMethod6         = "method_6"
	StatNoCoords        = "no_coords"
	StatFetchFailed     = "fetch_failed"
	StatAddressFound    = "address_found"
	StatDetailedAddress = "detailed_address"
	StatGeocoded        = "geocoded"
	StatGeocodingFailed = "geocoding_failed"
)

// MethodStats maps an extraction method name (or outcome) to a count.
type MethodStats map[string]int

// Merge adds the counters from other into s pointwise.
func (s MethodStats) Merge(other MethodStats) {
	for key, n := range other {
		s[key] += n
	}
}
