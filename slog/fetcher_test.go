package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	wikiloc "github.com/jannetolppanen/wikipedia-universal-location-scraper"
	"github.com/jannetolppanen/wikipedia-universal-location-scraper/mock"
	wikislog "github.com/jannetolppanen/wikipedia-universal-location-scraper/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	f := wikislog.NewLoggingFetcher(&mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			return "<html></html>", nil
		},
	}, logger)

	html, err := f.Fetch(context.Background(), "https://fi.wikipedia.org/wiki/Lahti")

	require.NoError(t, err)
	assert.Equal(t, "<html></html>", html)
	assert.Contains(t, buf.String(), "page fetch")
	assert.Contains(t, buf.String(), "Lahti")
}

func TestLoggingGeocoder_Geocode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	g := wikislog.NewLoggingGeocoder(&mock.Geocoder{
		GeocodeFn: func(_ context.Context, address string) (*wikiloc.Coordinate, error) {
			return &wikiloc.Coordinate{Lat: 60.17, Lon: 24.94, Method: wikiloc.MethodGeocoding, Source: "nominatim"}, nil
		},
	}, logger)

	coord, err := g.Geocode(context.Background(), "Mannerheimintie 1, Helsinki")

	require.NoError(t, err)
	assert.Equal(t, "nominatim", coord.Source)
	assert.Contains(t, buf.String(), "geocoding lookup")
	assert.Contains(t, buf.String(), "nominatim")
}
