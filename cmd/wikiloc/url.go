package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	wikiloc "github.com/jannetolppanen/wikipedia-universal-location-scraper"
)

// Run executes the url command: it processes a single page through the full
// pipeline and prints the outcome without persisting anything.
func (c *URLCmd) Run(deps *Dependencies) error {
	article := &wikiloc.Article{
		Name:          articleName(c.URL),
		WikipediaLink: c.URL,
	}
	if err := article.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikiloc.ErrorMessage(err))
		return err
	}

	deps.Processor.ProcessArticle(deps.Ctx, article)

	bold := color.New(color.Bold)
	_, _ = bold.Fprintf(deps.Stdout, "Results for %s\n", article.Name)
	if article.Coordinates != nil {
		coords := article.Coordinates
		fmt.Fprintf(deps.Stdout, "  Coordinates: %v, %v\n", coords.Lat, coords.Lon)
		fmt.Fprintf(deps.Stdout, "  Method:      %s\n", coords.Method)
		fmt.Fprintf(deps.Stdout, "  Format:      %s\n", coords.Format)
		fmt.Fprintf(deps.Stdout, "  Original:    %s\n", coords.Original)
	} else {
		fmt.Fprintln(deps.Stdout, "  No coordinates found")
	}
	if article.Address != "" {
		fmt.Fprintf(deps.Stdout, "  Address:     %s\n", article.Address)
	} else {
		fmt.Fprintln(deps.Stdout, "  No address found")
	}
	return nil
}

// articleName derives a display name from the last path segment of the URL.
func articleName(url string) string {
	trimmed := strings.TrimRight(url, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	return trimmed
}
