package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/jannetolppanen/wikipedia-universal-location-scraper/batch"
	"github.com/jannetolppanen/wikipedia-universal-location-scraper/fs"
	"github.com/jannetolppanen/wikipedia-universal-location-scraper/goquery"
	wikihttp "github.com/jannetolppanen/wikipedia-universal-location-scraper/http"
	wikislog "github.com/jannetolppanen/wikipedia-universal-location-scraper/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wikiloc"),
		kong.Description("Extract coordinates and addresses from Wikipedia pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wikiloc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Quiet mode keeps warnings and errors only.
	level := slog.LevelInfo
	if cli.Batch.Quiet {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := wikislog.NewLoggingFetcher(wikihttp.NewFetcher(), logger)
	geocoder := wikislog.NewLoggingGeocoder(wikihttp.NewGeocoder(), logger)
	store := fs.NewArticleStore()

	deps.Logger = logger
	deps.Store = store
	deps.Processor = &batch.Processor{
		Fetcher:     fetcher,
		Coordinates: goquery.NewExtractor(),
		Addresses:   goquery.NewAddressExtractor(),
		Geocoder:    geocoder,
		Store:       store,
		Logger:      logger,
	}

	return kongCtx.Run(deps)
}
