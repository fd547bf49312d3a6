// Package batch provides sequential batch processing of articles.
// It coordinates page fetching, coordinate extraction, address fallback,
// and geocoding, with periodic persistence of progress.
package batch

import (
	"context"
	"log/slog"
	"time"

	wikiloc "github.com/jannetolppanen/wikipedia-universal-location-scraper"
)

// DefaultSaveEvery is the number of processed articles between
// intermediate saves.
const DefaultSaveEvery = 10

// Processor runs the extraction pipeline over an article list, strictly
// one article at a time. Network pacing is the collaborators' concern;
// the processor never overlaps calls.
type Processor struct {
	Fetcher     wikiloc.Fetcher
	Coordinates wikiloc.CoordinateExtractor
	Addresses   wikiloc.AddressExtractor
	Geocoder    wikiloc.Geocoder
	Store       wikiloc.ArticleStore
	SaveEvery   int
	Logger      *slog.Logger
}

// Result holds the outcome of a batch run.
type Result struct {
	Total           int
	Processed       int
	Skipped         int
	WithCoordinates int
	WithAddress     int
	Stats           wikiloc.MethodStats
	Elapsed         time.Duration
}

// ProgressEvent reports per-article progress during a batch run.
type ProgressEvent struct {
	Article   *wikiloc.Article
	Completed int
	Total     int
	Skipped   bool

	// ETA estimates the remaining run time from the average time per
	// processed article. Zero until the first article completes.
	ETA time.Duration
}

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Run processes every article in order and persists the full list to
// outputPath every SaveEvery processed articles and once at the end.
// Articles that already carry coordinates are skipped, which makes an
// interrupted run resumable from its own output file.
func (p *Processor) Run(ctx context.Context, articles []*wikiloc.Article, outputPath string, progress ProgressFunc) (*Result, error) {
	saveEvery := p.SaveEvery
	if saveEvery <= 0 {
		saveEvery = DefaultSaveEvery
	}

	result := &Result{Total: len(articles), Stats: wikiloc.MethodStats{}}
	pending := 0
	for _, a := range articles {
		if a.Coordinates == nil {
			pending++
		}
	}

	start := time.Now()
	completed := 0
	for _, article := range articles {
		completed++

		if article.Coordinates != nil {
			result.Skipped++
			if progress != nil {
				progress(ProgressEvent{Article: article, Completed: completed, Total: result.Total, Skipped: true})
			}
			continue
		}

		stats := p.ProcessArticle(ctx, article)
		result.Processed++
		result.Stats.Merge(stats)

		if progress != nil {
			progress(ProgressEvent{
				Article:   article,
				Completed: completed,
				Total:     result.Total,
				ETA:       estimateETA(time.Since(start), result.Processed, pending),
			})
		}

		if result.Processed%saveEvery == 0 {
			p.logger().Info("saving progress", "completed", completed, "total", result.Total)
			if err := p.Store.Save(outputPath, articles); err != nil {
				return nil, err
			}
		}
	}

	if err := p.Store.Save(outputPath, articles); err != nil {
		return nil, err
	}

	for _, a := range articles {
		if a.Coordinates != nil {
			result.WithCoordinates++
		}
		if a.Address != "" {
			result.WithAddress++
		}
	}
	result.Elapsed = time.Since(start)
	return result, nil
}

// ProcessArticle runs the pipeline for one article, mutating it in place,
// and returns the per-article outcome counters. Failures never propagate:
// a fetch error leaves the article unmodified, extraction misses fall
// through to the next stage, and a geocoding miss leaves the address.
func (p *Processor) ProcessArticle(ctx context.Context, article *wikiloc.Article) wikiloc.MethodStats {
	logger := p.logger().With("article", article.Name)
	stats := wikiloc.MethodStats{}

	html, err := p.Fetcher.Fetch(ctx, article.WikipediaLink)
	if err != nil {
		logger.Warn("fetch failed", "url", article.WikipediaLink, "err", err)
		stats[wikiloc.StatFetchFailed]++
		return stats
	}

	coord, err := p.Coordinates.ExtractCoordinates(html)
	if err == nil {
		logger.Info("coordinates found", "method", coord.Method, "lat", coord.Lat, "lon", coord.Lon)
		article.Coordinates = coord
		stats[coord.Method]++
		return stats
	}
	logger.Info("no coordinates found")
	stats[wikiloc.StatNoCoords]++

	info, err := p.Addresses.ExtractAddress(html)
	if err != nil {
		logger.Info("no address found")
		return stats
	}
	article.Address = info.Text
	stats[wikiloc.StatAddressFound]++
	logger.Info("address found", "address", info.Text, "detailed", info.Detailed)

	if !info.Detailed {
		return stats
	}
	stats[wikiloc.StatDetailedAddress]++

	if p.Geocoder == nil {
		return stats
	}
	coord, err = p.Geocoder.Geocode(ctx, info.Text)
	if err != nil {
		logger.Warn("geocoding failed", "address", info.Text, "err", err)
		stats[wikiloc.StatGeocodingFailed]++
		return stats
	}
	logger.Info("geocoded", "source", coord.Source, "lat", coord.Lat, "lon", coord.Lon)
	article.Coordinates = coord
	stats[wikiloc.StatGeocoded]++
	return stats
}

func (p *Processor) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

// estimateETA projects the remaining run time from the elapsed time per
// processed article.
func estimateETA(elapsed time.Duration, processed, pending int) time.Duration {
	if processed <= 0 || pending <= processed {
		return 0
	}
	perArticle := elapsed / time.Duration(processed)
	return perArticle * time.Duration(pending-processed)
}
