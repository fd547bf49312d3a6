package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	wikiloc "github.com/jannetolppanen/wikipedia-universal-location-scraper"
)

var _ Strategy = (*InfoboxStrategy)(nil)

// InfoboxStrategy extracts coordinates from the infobox table row whose
// header cell carries a coordinates label in the page's language
// ("Koordinaatit" on Finnish Wikipedia, "Coordinates" on English).
// DMS pairs only.
type InfoboxStrategy struct {
	labels []string
}

// NewInfoboxStrategy creates a new InfoboxStrategy.
func NewInfoboxStrategy() *InfoboxStrategy {
	return &InfoboxStrategy{labels: []string{"Koordinaatit", "Coordinates"}}
}

// Name returns the strategy's statistics identifier.
func (s *InfoboxStrategy) Name() string {
	return wikiloc.StatMethod3
}

// Extract attempts to locate and parse a coordinate in the document.
func (s *InfoboxStrategy) Extract(doc *goquery.Document) *wikiloc.Coordinate {
	infobox := doc.Find("table.infobox").First()
	if infobox.Length() == 0 {
		return nil
	}

	var coord *wikiloc.Coordinate
	infobox.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		th := row.Find("th").First()
		if th.Length() == 0 || !s.hasLabel(th.Text()) {
			return true
		}

		span := row.Find("td").First().Find("span#coordinatespan").First()
		if span.Length() == 0 {
			return false
		}
		coord = dmsPairCoordinate(strings.TrimSpace(span.Text()), s.Name())
		return false
	})
	return coord
}

func (s *InfoboxStrategy) hasLabel(text string) bool {
	for _, label := range s.labels {
		if strings.Contains(text, label) {
			return true
		}
	}
	return false
}
