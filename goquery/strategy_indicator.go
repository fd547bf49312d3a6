package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	wikiloc "github.com/jannetolppanen/wikipedia-universal-location-scraper"
)

var _ Strategy = (*IndicatorStrategy)(nil)

// IndicatorStrategy extracts coordinates from the page-status indicator
// container (div#mw-indicator-AA-coordinates), looking for the same
// coordinate span as CoordSpanStrategy but only inside the indicator.
// DMS pairs only.
type IndicatorStrategy struct{}

// NewIndicatorStrategy creates a new IndicatorStrategy.
func NewIndicatorStrategy() *IndicatorStrategy {
	return &IndicatorStrategy{}
}

// Name returns the strategy's statistics identifier.
func (s *IndicatorStrategy) Name() string {
	return wikiloc.StatMethod2
}

// Extract attempts to locate and parse a coordinate in the document.
func (s *IndicatorStrategy) Extract(doc *goquery.Document) *wikiloc.Coordinate {
	span := doc.Find("div#mw-indicator-AA-coordinates span#coordinatespan").First()
	if span.Length() == 0 {
		return nil
	}
	return dmsPairCoordinate(strings.TrimSpace(span.Text()), s.Name())
}
