package goquery

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	wikiloc "github.com/jannetolppanen/wikipedia-universal-location-scraper"
)

// kartographerPattern matches the coordinates array inside a Kartographer
// live-data payload, e.g. "coordinates":[25.681867,61.298617]
var kartographerPattern = regexp.MustCompile(`"coordinates":\s*\[(-?[\d.]+),\s*(-?[\d.]+)\]`)

var _ Strategy = (*KartographerStrategy)(nil)

// KartographerStrategy extracts coordinates from embedded map data: any
// element carrying both data-lat and data-lon attributes, or failing that
// the wgKartographerLiveData payload in inline scripts.
//
// The Kartographer coordinates array is GeoJSON-style [lon, lat] order,
// not [lat, lon]. This ordering has not been verified against a
// counterexample; if real payloads disagree, fix it here.
type KartographerStrategy struct{}

// NewKartographerStrategy creates a new KartographerStrategy.
func NewKartographerStrategy() *KartographerStrategy {
	return &KartographerStrategy{}
}

// Name returns the strategy's statistics identifier.
func (s *KartographerStrategy) Name() string {
	return wikiloc.StatMethod6
}

// Extract attempts to locate and parse a coordinate in the document.
func (s *KartographerStrategy) Extract(doc *goquery.Document) *wikiloc.Coordinate {
	if coord := s.fromMapElement(doc); coord != nil {
		return coord
	}
	return s.fromLiveData(doc)
}

func (s *KartographerStrategy) fromMapElement(doc *goquery.Document) *wikiloc.Coordinate {
	el := doc.Find("[data-lat][data-lon]").First()
	if el.Length() == 0 {
		return nil
	}

	latAttr, _ := el.Attr("data-lat")
	lonAttr, _ := el.Attr("data-lon")
	lat, err := strconv.ParseFloat(latAttr, 64)
	if err != nil {
		return nil
	}
	lon, err := strconv.ParseFloat(lonAttr, 64)
	if err != nil {
		return nil
	}

	coord := &wikiloc.Coordinate{
		Lat:      lat,
		Lon:      lon,
		Format:   wikiloc.FormatDecimal,
		Original: fmt.Sprintf("map element: data-lat=%v, data-lon=%v", lat, lon),
		Method:   s.Name(),
	}
	if coord.Validate() != nil {
		return nil
	}
	return coord
}

func (s *KartographerStrategy) fromLiveData(doc *goquery.Document) *wikiloc.Coordinate {
	var coord *wikiloc.Coordinate
	eachInlineScript(doc, func(text string) bool {
		if !strings.Contains(text, "wgKartographerLiveData") {
			return true
		}
		m := kartographerPattern.FindStringSubmatch(text)
		if m == nil {
			return true
		}

		// [lon, lat] order: the first array element is the longitude.
		lon, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return true
		}
		lat, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return true
		}

		c := &wikiloc.Coordinate{
			Lat:      lat,
			Lon:      lon,
			Format:   wikiloc.FormatDecimal,
			Original: fmt.Sprintf("Kartographer data: %v, %v", lon, lat),
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
