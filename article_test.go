package wikiloc_test

import (
	"testing"

	wikiloc "github.com/jannetolppanen/wikipedia-universal-location-scraper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticle_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		a := &wikiloc.Article{Name: "Helsinki", WikipediaLink: "https://fi.wikipedia.org/wiki/Helsinki"}
		require.NoError(t, a.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()

		a := &wikiloc.Article{WikipediaLink: "https://fi.wikipedia.org/wiki/Helsinki"}
		err := a.Validate()
		assert.Equal(t, wikiloc.EINVALID, wikiloc.ErrorCode(err))
	})

	t.Run("missing link", func(t *testing.T) {
		t.Parallel()

		a := &wikiloc.Article{Name: "Helsinki"}
		err := a.Validate()
		assert.Equal(t, wikiloc.EINVALID, wikiloc.ErrorCode(err))
	})
}

func TestCoordinate_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		c := &wikiloc.Coordinate{Lat: 60.17, Lon: 24.94, Format: wikiloc.FormatDecimal}
		require.NoError(t, c.Validate())
	})

	t.Run("latitude out of range", func(t *testing.T) {
		t.Parallel()

		c := &wikiloc.Coordinate{Lat: 91, Lon: 0}
		assert.Equal(t, wikiloc.EINVALID, wikiloc.ErrorCode(c.Validate()))
	})

	t.Run("longitude out of range", func(t *testing.T) {
		t.Parallel()

		c := &wikiloc.Coordinate{Lat: 0, Lon: -180.5}
		assert.Equal(t, wikiloc.EINVALID, wikiloc.ErrorCode(c.Validate()))
	})
}

func TestMethodStats_Merge(t *testing.T) {
	t.Parallel()

	total := wikiloc.MethodStats{wikiloc.StatMethod1: 2, wikiloc.StatNoCoords: 1}
	total.Merge(wikiloc.MethodStats{wikiloc.StatMethod1: 1, wikiloc.StatAddressFound: 1})

	assert.Equal(t, 3, total[wikiloc.StatMethod1])
	assert.Equal(t, 1, total[wikiloc.StatNoCoords])
	assert.Equal(t, 1, total[wikiloc.StatAddressFound])
}
