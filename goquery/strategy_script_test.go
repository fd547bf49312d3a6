package goquery_test

import (
	"testing"

	wikiloc "github.com/jannetolppanen/wikipedia-universal-location-scraper"
	"github.com/jannetolppanen/wikipedia-universal-location-scraper/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ goquery.Strategy = (*goquery.ScriptStrategy)(nil)

func TestScriptStrategy_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "method_4", goquery.NewScriptStrategy().Name())
}

func TestScriptStrategy_Extract(t *testing.T) {
	t.Parallel()

	t.Run("wgCoordinates payload", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><head>
<script>RLCONF={"wgPageName":"Lahti","wgCoordinates":{"lat":61.29861666666667,"lon":25.681866666666668}};</script>
</head><body></body></html>`)

		coord := goquery.NewScriptStrategy().Extract(doc)

		require.NotNil(t, coord)
		assert.InDelta(t, 61.29861666666667, coord.Lat, 1e-12)
		assert.InDelta(t, 25.681866666666668, coord.Lon, 1e-12)
		assert.Equal(t, wikiloc.FormatDecimal, coord.Format)
		assert.Equal(t, "method_4", coord.Method)
	})

	t.Run("negative coordinates", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><head>
<script>RLCONF={"wgCoordinates":{"lat":-33.9249,"lon":-70.6693}};</script>
</head><body></body></html>`)

		coord := goquery.NewScriptStrategy().Extract(doc)

		require.NotNil(t, coord)
		assert.InDelta(t, -33.9249, coord.Lat, 1e-9)
		assert.InDelta(t, -70.6693, coord.Lon, 1e-9)
	})

	t.Run("payload spread over whitespace", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><head>
<script>var cfg = {"wgCoordinates": { "lat": 60.45, "lon": 22.26 }};</script>
</head><body></body></html>`)

		coord := goquery.NewScriptStrategy().Extract(doc)

		require.NotNil(t, coord)
		assert.InDelta(t, 60.45, coord.Lat, 1e-9)
	})

	t.Run("no wgCoordinates", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><head>
<script>RLCONF={"wgPageName":"Lahti"};</script>
</head><body></body></html>`)

		assert.Nil(t, goquery.NewScriptStrategy().Extract(doc))
	})
}
