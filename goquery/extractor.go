// Package goquery implements HTML-based location extraction using CSS
// selectors. It contains the ordered coordinate-extraction strategies and
// the infobox address extractor.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	wikiloc "github.com/jannetolppanen/wikipedia-universal-location-scraper"
)

// Strategy attempts to extract a coordinate from one structural encoding
// of location data. Extract returns nil when the page does not carry that
// encoding or when the matched text is not parseable; strategies never
// return errors.
type Strategy interface {
	// Name returns the strategy's statistics identifier.
	Name() string

	// Extract attempts to locate and parse a coordinate in the document.
	Extract(doc *goquery.Document) *wikiloc.Coordinate
}

// Ensure Extractor implements wikiloc.CoordinateExtractor at compile time.
var _ wikiloc.CoordinateExtractor = (*Extractor)(nil)

// Extractor runs coordinate strategies in fixed order. The first strategy
// to produce a coordinate wins and the rest are skipped.
type Extractor struct {
	strategies []Strategy
}

// NewExtractor creates an Extractor with the default strategy chain:
// coordinate span, indicator panel, infobox table, embedded script,
// geo metadata, map data.
func NewExtractor() *Extractor {
	return &Extractor{
		strategies: []Strategy{
			NewCoordSpanStrategy(),
			NewIndicatorStrategy(),
			NewInfoboxStrategy(),
			NewScriptStrategy(),
			NewMetaStrategy(),
			NewKartographerStrategy(),
		},
	}
}

// ExtractCoordinates parses the HTML and returns the first coordinate
// found by the strategy chain. Returns ENOTFOUND when no strategy matches.
func (e *Extractor) ExtractCoordinates(html string) (*wikiloc.Coordinate, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, wikiloc.Errorf(wikiloc.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, s := range e.strategies {
		if coord := s.Extract(doc); coord != nil {
			return coord, nil
		}
	}
	return nil, wikiloc.Errorf(wikiloc.ENOTFOUND, "no coordinates found")
}

// Shared coordinate text patterns.
var (
	latDMSPattern = regexp.MustCompile(`\d+°\d+′\d+(?:\.\d+)?″[NS]`)
	lonDMSPattern = regexp.MustCompile(`\d+°\d+′\d+(?:\.\d+)?″[EW]`)
)

// dmsPairCoordinate extracts a DMS latitude/longitude pair from text and
// converts it to decimal degrees. Returns nil when the pair is absent,
// unparseable, or out of range.
func dmsPairCoordinate(text, method string) *wikiloc.Coordinate {
	latDMS := latDMSPattern.FindString(text)
	lonDMS := lonDMSPattern.FindString(text)
	if latDMS == "" || lonDMS == "" {
		return nil
	}

	lat, err := wikiloc.ParseDMS(latDMS)
	if err != nil {
		return nil
	}
	lon, err := wikiloc.ParseDMS(lonDMS)
	if err != nil {
		return nil
	}

	coord := &wikiloc.Coordinate{
		Lat:      lat,
		Lon:      lon,
		Format:   wikiloc.FormatDMS,
		Original: latDMS + ", " + lonDMS,
		Method:   method,
	}
	if coord.Validate() != nil {
		return nil
	}
	return coord
}

// eachInlineScript calls fn with the text of every inline script tag until
// fn returns false.
func eachInlineScript(doc *goquery.Document, fn func(text string) bool) {
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		if text == "" {
			return true
		}
		return fn(text)
	})
}
