package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	wikiloc "github.com/jannetolppanen/wikipedia-universal-location-scraper"
)

// Default geocoding provider endpoints.
const (
	DefaultNominatimURL = "https://nominatim.openstreetmap.org"
	DefaultPhotonURL    = "https://photon.komoot.io"
)

// Default polite delay bounds before each geocoding request.
const (
	DefaultGeocodeMinDelay = 1500 * time.Millisecond
	DefaultGeocodeMaxDelay = 3 * time.Second
)

// genericBrowserUserAgent is sent on the Nominatim 403 retry. Nominatim
// occasionally rejects unfamiliar agents on the first request shape.
const genericBrowserUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/115.0"

// Ensure Geocoder implements wikiloc.Geocoder at compile time.
var _ wikiloc.Geocoder = (*Geocoder)(nil)

// Geocoder resolves free-text addresses through Nominatim, falling back to
// Photon when Nominatim fails or returns no results. A randomized polite
// delay precedes every lookup.
type Geocoder struct {
	client       *http.Client
	nominatimURL string
	photonURL    string
	userAgent    string
	timeout      time.Duration
	minDelay     time.Duration
	maxDelay     time.Duration
}

// GeocoderOption configures a Geocoder.
type GeocoderOption func(*Geocoder)

// WithProviders overrides the provider base URLs (used in tests).
func WithProviders(nominatimURL, photonURL string) GeocoderOption {
	return func(g *Geocoder) {
		g.nominatimURL = nominatimURL
		g.photonURL = photonURL
	}
}

// WithGeocodeDelay sets the bounds of the randomized pre-lookup delay.
// Zero bounds disable the delay (used in tests).
func WithGeocodeDelay(min, max time.Duration) GeocoderOption {
	return func(g *Geocoder) {
		g.minDelay = min
		g.maxDelay = max
	}
}

// WithGeocodeTimeout sets the timeout for geocoding HTTP requests.
func WithGeocodeTimeout(d time.Duration) GeocoderOption {
	return func(g *Geocoder) {
		g.timeout = d
	}
}

// NewGeocoder creates a new two-provider Geocoder.
func NewGeocoder(opts ...GeocoderOption) *Geocoder {
	g := &Geocoder{
		nominatimURL: DefaultNominatimURL,
		photonURL:    DefaultPhotonURL,
		userAgent:    DefaultUserAgent,
		timeout:      DefaultFetchTimeout,
		minDelay:     DefaultGeocodeMinDelay,
		maxDelay:     DefaultGeocodeMaxDelay,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.client = &http.Client{
		Timeout: g.timeout,
	}

	return g
}

// Geocode resolves the address and returns a coordinate tagged with the
// geocoding method and the provider that produced it. Returns ENOTFOUND
// when both providers yield nothing.
func (g *Geocoder) Geocode(ctx context.Context, address string) (*wikiloc.Coordinate, error) {
	if err := sleepJitter(ctx, g.minDelay, g.maxDelay); err != nil {
		return nil, err
	}

	if coord, err := g.nominatim(ctx, address); err == nil {
		return coord, nil
	}

	if coord, err := g.photon(ctx, address); err == nil {
		return coord, nil
	}

	return nil, wikiloc.Errorf(wikiloc.ENOTFOUND, "no geocoding result for %q", address)
}

// nominatimResult is a single entry of a Nominatim search response.
// Nominatim encodes coordinates as strings.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (g *Geocoder) nominatim(ctx context.Context, address string) (*wikiloc.Coordinate, error) {
	query := url.Values{
		"q":      {address},
		"format": {"json"},
		"limit":  {"1"},
	}

	resp, err := g.get(ctx, g.nominatimURL+"/search?"+query.Encode(), g.userAgent)
	if err != nil {
		return nil, err
	}

	// 403 workaround: same endpoint, alternate parameter encoding and a
	// generic browser agent. Not a different provider.
	if resp.StatusCode == http.StatusForbidden {
		resp.Body.Close()
		query.Set("format", "jsonv2")
		query.Set("addressdetails", "0")
		resp, err = g.get(ctx, g.nominatimURL+"/search?"+query.Encode(), genericBrowserUserAgent)
		if err != nil {
			return nil, err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, wikiloc.Errorf(wikiloc.EUNAVAILABLE, "nominatim HTTP %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, wikiloc.Errorf(wikiloc.EINVALID, "nominatim response: %v", err)
	}
	if len(results) == 0 {
		return nil, wikiloc.Errorf(wikiloc.ENOTFOUND, "nominatim: no results for %q", address)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, wikiloc.Errorf(wikiloc.EINVALID, "nominatim latitude %q: %v", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, wikiloc.Errorf(wikiloc.EINVALID, "nominatim longitude %q: %v", results[0].Lon, err)
	}

	return g.coordinate(lat, lon, address, "nominatim")
}

// photonResponse is the GeoJSON feature collection returned by Photon.
// Geometry coordinates are [lon, lat].
type photonResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

func (g *Geocoder) photon(ctx context.Context, address string) (*wikiloc.Coordinate, error) {
	query := url.Values{
		"q":     {address},
		"limit": {"1"},
	}

	resp, err := g.get(ctx, g.photonURL+"/api?"+query.Encode(), g.userAgent)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, wikiloc.Errorf(wikiloc.EUNAVAILABLE, "photon HTTP %d", resp.StatusCode)
	}

	var result photonResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, wikiloc.Errorf(wikiloc.EINVALID, "photon response: %v", err)
	}
	if len(result.Features) == 0 || len(result.Features[0].Geometry.Coordinates) < 2 {
		return nil, wikiloc.Errorf(wikiloc.ENOTFOUND, "photon: no results for %q", address)
	}

	coords := result.Features[0].Geometry.Coordinates
	return g.coordinate(coords[1], coords[0], address, "photon")
}

func (g *Geocoder) get(ctx context.Context, url, userAgent string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, wikiloc.Errorf(wikiloc.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, wikiloc.Errorf(wikiloc.EUNAVAILABLE, "geocoding request: %v", err)
	}
	return resp, nil
}

func (g *Geocoder) coordinate(lat, lon float64, address, source string) (*wikiloc.Coordinate, error) {
	coord := &wikiloc.Coordinate{
		Lat:      lat,
		Lon:      lon,
		Format:   wikiloc.FormatDecimal,
		Original: address,
		Method:   wikiloc.MethodGeocoding,
		Source:   source,
	}
	if err := coord.Validate(); err != nil {
		return nil, err
	}
	return coord, nil
}
