package main

import (
	"context"
	"io"
	"log/slog"

	wikiloc "github.com/jannetolppanen/wikipedia-universal-location-scraper"
	"github.com/jannetolppanen/wikipedia-universal-location-scraper/batch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Store     wikiloc.ArticleStore
	Processor *batch.Processor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Batch BatchCmd `cmd:"" help:"Process a JSON file of articles, filling in coordinates and addresses"`
	URL   URLCmd   `cmd:"" help:"Extract coordinates from a single Wikipedia page"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Input  string `arg:"" help:"Input JSON file of articles"`
	Output string `arg:"" help:"Output JSON file for results"`
	Quiet  bool   `short:"q" help:"Suppress progress output"`
}

// URLCmd is the "url" subcommand.
type URLCmd struct {
	URL string `arg:"" help:"Wikipedia page URL"`
}
