package goquery_test

import (
	"testing"

	wikiloc "github.com/jannetolppanen/wikipedia-universal-location-scraper"
	"github.com/jannetolppanen/wikipedia-universal-location-scraper/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ wikiloc.CoordinateExtractor = (*goquery.Extractor)(nil)

func TestExtractor_ExtractCoordinates(t *testing.T) {
	t.Parallel()

	t.Run("coordinate span wins over embedded script", func(t *testing.T) {
		t.Parallel()

		// Both the span (strategy 1) and the wgCoordinates payload
		// (strategy 4) are present; the earlier strategy must win.
		html := `<html><head>
<script>RLCONF={"wgCoordinates":{"lat":61.29,"lon":25.68}};</script>
</head><body>
<span id="coordinatespan">60°09′33.2″N, 24°56′18″E</span>
</body></html>`

		coord, err := goquery.NewExtractor().ExtractCoordinates(html)

		require.NoError(t, err)
		assert.Equal(t, "method_1", coord.Method)
		assert.InDelta(t, 60.159222, coord.Lat, 1e-6)
	})

	t.Run("falls through to later strategies", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta name="geo.position" content="60.45;22.26">
</head><body><p>no spans, no scripts</p></body></html>`

		coord, err := goquery.NewExtractor().ExtractCoordinates(html)

		require.NoError(t, err)
		assert.Equal(t, "method_5", coord.Method)
		assert.InDelta(t, 60.45, coord.Lat, 1e-9)
		assert.InDelta(t, 22.26, coord.Lon, 1e-9)
	})

	t.Run("indicator panel beats infobox", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div id="mw-indicator-AA-coordinates"><span id="coordinatespan">61°29′52″N, 23°45′36″E</span></div>
</body></html>`

		coord, err := goquery.NewExtractor().ExtractCoordinates(html)

		require.NoError(t, err)
		// The standalone span also satisfies strategy 1, which runs first.
		assert.Equal(t, "method_1", coord.Method)
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewExtractor().ExtractCoordinates(`<html><body><p>plain article</p></body></html>`)

		assert.Equal(t, wikiloc.ENOTFOUND, wikiloc.ErrorCode(err))
	})
}
