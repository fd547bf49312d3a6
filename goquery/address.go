package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	wikiloc "github.com/jannetolppanen/wikipedia-universal-location-scraper"
)

var (
	// citationPattern matches bracketed numeric citation markers like [3].
	citationPattern = regexp.MustCompile(`\[\d+\]`)

	whitespacePattern = regexp.MustCompile(`\s+`)

	digitPattern = regexp.MustCompile(`\d`)
)

// Ensure AddressExtractor implements wikiloc.AddressExtractor at compile time.
var _ wikiloc.AddressExtractor = (*AddressExtractor)(nil)

// AddressExtractor locates the location row of an infobox table and
// returns its value with citation markers stripped. Two label lookups are
// tried in order: a plain header cell, then a bold-styled data cell; the
// first match wins.
type AddressExtractor struct {
	labels []string
}

// NewAddressExtractor creates an AddressExtractor recognizing the
// "Sijainti" (Finnish) and "Location" (English) infobox labels.
func NewAddressExtractor() *AddressExtractor {
	return &AddressExtractor{labels: []string{"Sijainti", "Location"}}
}

// ExtractAddress parses the HTML and returns the infobox address.
// Returns ENOTFOUND when the page has no labelled location row.
func (e *AddressExtractor) ExtractAddress(html string) (*wikiloc.AddressInfo, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, wikiloc.Errorf(wikiloc.EINVALID, "failed to parse HTML: %v", err)
	}

	infobox := doc.Find("table.infobox").First()
	if infobox.Length() == 0 {
		return nil, wikiloc.Errorf(wikiloc.ENOTFOUND, "no infobox found")
	}

	value := e.findByHeaderCell(infobox)
	if value == nil {
		value = e.findByBoldCell(infobox)
	}
	if value == nil {
		return nil, wikiloc.Errorf(wikiloc.ENOTFOUND, "no location row in infobox")
	}

	text := cleanCellText(value)
	if text == "" {
		return nil, wikiloc.Errorf(wikiloc.ENOTFOUND, "location row is empty")
	}

	return &wikiloc.AddressInfo{
		Text:     text,
		Detailed: digitPattern.MatchString(text) && strings.Contains(text, ","),
	}, nil
}

// findByHeaderCell locates the value cell of a row whose header (th) or
// leading data cell carries a location label.
func (e *AddressExtractor) findByHeaderCell(infobox *goquery.Selection) *goquery.Selection {
	var value *goquery.Selection
	infobox.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		var found bool
		row.ChildrenFiltered("th, td").EachWithBreak(func(_ int, cell *goquery.Selection) bool {
			if !e.hasLabel(cell.Text()) {
				return true
			}
			found = true
			if goquery.NodeName(cell) == "th" {
				value = row.ChildrenFiltered("td").First()
			} else {
				value = cell.NextAllFiltered("td").First()
			}
			return false
		})
		return !found
	})
	if value != nil && value.Length() == 0 {
		return nil
	}
	return value
}

// findByBoldCell locates the value cell following a bold-styled data cell
// that carries a location label. Some infobox templates style the label
// with font-weight instead of a header cell.
func (e *AddressExtractor) findByBoldCell(infobox *goquery.Selection) *goquery.Selection {
	var value *goquery.Selection
	infobox.Find("td[style]").EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		style, _ := cell.Attr("style")
		if !strings.Contains(strings.ReplaceAll(style, " ", ""), "font-weight:bold") {
			return true
		}
		if !e.hasLabel(cell.Text()) {
			return true
		}
		value = cell.NextAllFiltered("td").First()
		return false
	})
	if value != nil && value.Length() == 0 {
		return nil
	}
	return value
}

func (e *AddressExtractor) hasLabel(text string) bool {
	for _, label := range e.labels {
		if strings.Contains(text, label) {
			return true
		}
	}
	return false
}

// cleanCellText extracts the cell's text with citations removed. Citation
// superscripts are first removed structurally from a clone of the node;
// a textual pass then strips any remaining [n] markers and collapses
// whitespace. Both passes stay: some templates carry citation markup as
// sub-elements, others only as text.
func cleanCellText(cell *goquery.Selection) string {
	clone := cell.Clone()
	clone.Find("sup.reference").Remove()

	text := strings.TrimSpace(clone.Text())
	if text == "" {
		text = strings.TrimSpace(cell.Text())
	}

	text = citationPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
