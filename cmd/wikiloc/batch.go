package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	wikiloc "github.com/jannetolppanen/wikipedia-universal-location-scraper"
	"github.com/jannetolppanen/wikipedia-universal-location-scraper/batch"
	"github.com/schollz/progressbar/v3"
)

// methodLabels maps stat keys to the summary lines printed after a run.
var methodLabels = []struct {
	key   string
	label string
}{
	{wikiloc.StatMethod1, "Coordinate span"},
	{wikiloc.StatMethod2, "Page indicator"},
	{wikiloc.StatMethod3, "Infobox row"},
	{wikiloc.StatMethod4, "Page config script"},
	{wikiloc.StatMethod5, "Geo metadata"},
	{wikiloc.StatMethod6, "Map data"},
	{wikiloc.StatGeocoded, "Geocoded from address"},
}

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	articles, err := deps.Store.Load(c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiloc.ErrorMessage(err))
		return err
	}

	existing := 0
	for _, a := range articles {
		if a.Coordinates != nil {
			existing++
		}
	}
	fmt.Fprintf(deps.Stdout, "Loaded %d articles, %d already have coordinates\n", len(articles), existing)

	var bar *progressbar.ProgressBar
	if !c.Quiet {
		bar = progressbar.NewOptions(len(articles),
			progressbar.OptionSetWriter(deps.Stderr),
			progressbar.OptionSetDescription(color.CyanString("processing")),
			progressbar.OptionShowCount(),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionClearOnFinish(),
		)
	}

	progress := func(event batch.ProgressEvent) {
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	result, err := deps.Processor.Run(deps.Ctx, articles, c.Output, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiloc.ErrorMessage(err))
		return err
	}
	if bar != nil {
		_ = bar.Finish()
	}

	printSummary(deps, result)
	fmt.Fprintf(deps.Stdout, "Results saved to %s\n", c.Output)
	return nil
}

// printSummary writes the post-run report: totals, per-method counts with
// percentages of the articles that gained coordinates, and failure counts.
func printSummary(deps *Dependencies, result *batch.Result) {
	bold := color.New(color.Bold)

	_, _ = bold.Fprintln(deps.Stdout, "\nSummary")
	fmt.Fprintf(deps.Stdout, "  Processed:         %d (skipped %d of %d)\n", result.Processed, result.Skipped, result.Total)
	fmt.Fprintf(deps.Stdout, "  With coordinates:  %d\n", result.WithCoordinates)
	fmt.Fprintf(deps.Stdout, "  With address:      %d\n", result.WithAddress)
	fmt.Fprintf(deps.Stdout, "  Elapsed:           %s\n", result.Elapsed.Round(time.Second))

	found := 0
	for _, m := range methodLabels {
		found += result.Stats[m.key]
	}
	if found > 0 {
		_, _ = bold.Fprintln(deps.Stdout, "\nMethods")
		for _, m := range methodLabels {
			n := result.Stats[m.key]
			if n == 0 {
				continue
			}
			fmt.Fprintf(deps.Stdout, "  %-22s %d (%.1f%%)\n", m.label, n, float64(n)/float64(found)*100)
		}
	}

	failures := []struct {
		key   string
		label string
	}{
		{wikiloc.StatFetchFailed, "Fetch failed"},
		{wikiloc.StatNoCoords, "No coordinates"},
		{wikiloc.StatGeocodingFailed, "Geocoding failed"},
	}
	printed := false
	for _, f := range failures {
		n := result.Stats[f.key]
		if n == 0 {
			continue
		}
		if !printed {
			_, _ = bold.Fprintln(deps.Stdout, "\nMisses")
			printed = true
		}
		fmt.Fprintf(deps.Stdout, "  %-22s %d\n", f.label, n)
	}
}
