package slog

import (
	"context"
	"log/slog"
	"time"

	wikiloc "github.com/jannetolppanen/wikipedia-universal-location-scraper"
)

// Ensure LoggingGeocoder implements wikiloc.Geocoder.
var _ wikiloc.Geocoder = (*LoggingGeocoder)(nil)

// LoggingGeocoder wraps a Geocoder with debug logging.
type LoggingGeocoder struct {
	next   wikiloc.Geocoder
	logger *slog.Logger
}

// NewLoggingGeocoder creates a new LoggingGeocoder.
func NewLoggingGeocoder(next wikiloc.Geocoder, logger *slog.Logger) *LoggingGeocoder {
	return &LoggingGeocoder{next: next, logger: logger}
}

// Geocode delegates to the wrapped geocoder and logs the operation.
func (g *LoggingGeocoder) Geocode(ctx context.Context, address string) (coord *wikiloc.Coordinate, err error) {
	defer func(begin time.Time) {
		source := ""
		if coord != nil {
			source = coord.Source
		}
		g.logger.Debug("geocoding lookup",
			"address", address,
			"source", source,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Geocode(ctx, address)
}
