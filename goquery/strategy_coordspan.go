package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	wikiloc "github.com/jannetolppanen/wikipedia-universal-location-scraper"
)

// decimalPairPattern matches a decimal-degree pair like "60.17°N 24.94°E".
var decimalPairPattern = regexp.MustCompile(`(\d+\.\d+)°[NS].*?(\d+\.\d+)°[EW]`)

var _ Strategy = (*CoordSpanStrategy)(nil)

// CoordSpanStrategy extracts coordinates from the page's uniquely
// identified coordinate span (span#coordinatespan). A DMS pair is
// preferred; a decimal-degree pair is accepted as a fallback, with the
// sign derived from hemisphere markers in the surrounding text.
type CoordSpanStrategy struct{}

// NewCoordSpanStrategy creates a new CoordSpanStrategy.
func NewCoordSpanStrategy() *CoordSpanStrategy {
	return &CoordSpanStrategy{}
}

// Name returns the strategy's statistics identifier.
func (s *CoordSpanStrategy) Name() string {
	return wikiloc.StatMethod1
}

// Extract attempts to locate and parse a coordinate in the document.
func (s *CoordSpanStrategy) Extract(doc *goquery.Document) *wikiloc.Coordinate {
	span := doc.Find("span#coordinatespan").First()
	if span.Length() == 0 {
		return nil
	}
	text := strings.TrimSpace(span.Text())

	if coord := dmsPairCoordinate(text, s.Name()); coord != nil {
		return coord
	}

	// Decimal-degree variant, e.g. "60.1699°N, 24.9384°E". The hemisphere
	// letters determine the sign.
	m := decimalPairPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	lon, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return nil
	}
	if strings.Contains(text, "S") {
		lat = -lat
	}
	if strings.Contains(text, "W") {
		lon = -lon
	}

	coord := &wikiloc.Coordinate{
		Lat:      lat,
		Lon:      lon,
		Format:   wikiloc.FormatDecimal,
		Original: text,
		Method:   s.Name(),
	}
	if coord.Validate() != nil {
		return nil
	}
	return coord
}
