package goquery

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	wikiloc "github.com/jannetolppanen/wikipedia-universal-location-scraper"
)

// wgCoordinatesPattern matches the wgCoordinates object MediaWiki embeds
// in its page configuration script, e.g.
// "wgCoordinates":{"lat":61.29861666666667,"lon":25.681866666666668}
var wgCoordinatesPattern = regexp.MustCompile(`"wgCoordinates":\s*\{\s*"lat":\s*(-?[\d.]+),\s*"lon":\s*(-?[\d.]+)\s*\}`)

var _ Strategy = (*ScriptStrategy)(nil)

// ScriptStrategy extracts coordinates from the wgCoordinates payload in
// inline page scripts. Values are already decimal degrees.
type ScriptStrategy struct{}

// NewScriptStrategy creates a new ScriptStrategy.
func NewScriptStrategy() *ScriptStrategy {
	return &ScriptStrategy{}
}

// Name returns the strategy's statistics identifier.
func (s *ScriptStrategy) Name() string {
	return wikiloc.StatMethod4
}

// Extract attempts to locate and parse a coordinate in the document.
func (s *ScriptStrategy) Extract(doc *goquery.Document) *wikiloc.Coordinate {
	var coord *wikiloc.Coordinate
	eachInlineScript(doc, func(text string) bool {
		m := wgCoordinatesPattern.FindStringSubmatch(text)
		if m == nil {
			return true
		}

		lat, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return true
		}
		lon, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return true
		}

		c := &wikiloc.Coordinate{
			Lat:      lat,
			Lon:      lon,
			Format:   wikiloc.FormatDecimal,
			Original: fmt.Sprintf("wgCoordinates: %v, %v", lat, lon),
			Method:   s.Name(),
		}
		if c.Validate() != nil {
			return true
		}
		coord = c
		return false
	})
	return coord
}
