package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	wikiloc "github.com/jannetolppanen/wikipedia-universal-location-scraper"
)

// geoPairPattern matches a "lat;lon" pair at the start of a string, as
// used by the geo.position meta tag and the geo microformat span.
var geoPairPattern = regexp.MustCompile(`^(-?[\d.]+);\s*(-?[\d.]+)`)

var _ Strategy = (*MetaStrategy)(nil)

// MetaStrategy extracts coordinates from page metadata: the geo.position
// meta tag first, then the geo microformat span. Some pages carry
// coordinates only in the head section, not in visible content.
type MetaStrategy struct{}

// NewMetaStrategy creates a new MetaStrategy.
func NewMetaStrategy() *MetaStrategy {
	return &MetaStrategy{}
}

// Name returns the strategy's statistics identifier.
func (s *MetaStrategy) Name() string {
	return wikiloc.StatMethod5
}

// Extract attempts to locate and parse a coordinate in the document.
func (s *MetaStrategy) Extract(doc *goquery.Document) *wikiloc.Coordinate {
	if content, ok := doc.Find(`meta[name="geo.position"]`).First().Attr("content"); ok {
		if coord := s.parsePair(content, "meta geo.position: "+content); coord != nil {
			return coord
		}
	}

	geoText := strings.TrimSpace(doc.Find("span.geo").First().Text())
	if geoText != "" {
		return s.parsePair(geoText, "geo microformat: "+geoText)
	}
	return nil
}

func (s *MetaStrategy) parsePair(text, original string) *wikiloc.Coordinate {
	m := geoPairPattern.FindStringSubmatch(strings.TrimSpace(text))
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

	coord := &wikiloc.Coordinate{
		Lat:      lat,
		Lon:      lon,
		Format:   wikiloc.FormatDecimal,
		Original: original,
		Method:   s.Name(),
	}
	if coord.Validate() != nil {
		return nil
	}
	return coord
}
