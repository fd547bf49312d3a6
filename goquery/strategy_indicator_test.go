package goquery_test

import (
	"testing"

	wikiloc "github.com/jannetolppanen/wikipedia-universal-location-scraper"
	"github.com/jannetolppanen/wikipedia-universal-location-scraper/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ goquery.Strategy = (*goquery.IndicatorStrategy)(nil)

func TestIndicatorStrategy_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "method_2", goquery.NewIndicatorStrategy().Name())
}

func TestIndicatorStrategy_Extract(t *testing.T) {
	t.Parallel()

	t.Run("coordinate span inside indicator", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body>
<div id="mw-indicator-AA-coordinates">
	<span id="coordinatespan">61°29′52″N, 23°45′36″E</span>
</div>
</body></html>`)

		coord := goquery.NewIndicatorStrategy().Extract(doc)

		require.NotNil(t, coord)
		assert.InDelta(t, 61.497778, coord.Lat, 1e-6)
		assert.InDelta(t, 23.76, coord.Lon, 1e-6)
		assert.Equal(t, wikiloc.FormatDMS, coord.Format)
		assert.Equal(t, "method_2", coord.Method)
	})

	t.Run("no indicator", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body>
<span id="coordinatespan">61°29′52″N, 23°45′36″E</span>
</body></html>`)

		assert.Nil(t, goquery.NewIndicatorStrategy().Extract(doc))
	})

	t.Run("indicator without coordinate span", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body>
<div id="mw-indicator-AA-coordinates"><span>featured article</span></div>
</body></html>`)

		assert.Nil(t, goquery.NewIndicatorStrategy().Extract(doc))
	})

	t.Run("decimal pair is not accepted", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body>
<div id="mw-indicator-AA-coordinates">
	<span id="coordinatespan">61.4978°N 23.7600°E</span>
</div>
</body></html>`)

		assert.Nil(t, goquery.NewIndicatorStrategy().Extract(doc))
	})
}
