package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/chrisism/gamefaqs"
	gfhttp "github.com/chrisism/gamefaqs/http"
	"github.com/chrisism/gamefaqs/scrape"
	gfslog "github.com/chrisism/gamefaqs/slog"
	"github.com/chrisism/gamefaqs/sqlite"
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
type Main struct {
	// Persistent cache database path. Set before calling Run().
	DBPath string

	// SQLite database backing the persistent cache.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
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
		kong.Name("gamefaqs"),
		kong.Description("Scrape game metadata and artwork references from GameFAQs."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'gamefaqs --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open the persistent cache database.
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set GAMEFAQS_DB to use a different database path\n")
		return fmt.Errorf("failed to open cache database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	fetcher := gfhttp.NewFetcher()
	defer fetcher.Close()

	var scraper gamefaqs.Scraper = scrape.New(fetcher,
		scrape.WithPersistentCache(sqlite.NewCacheService(m.DB)),
	)
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		scraper = gfslog.NewLoggingScraper(scraper, logger)
	}
	deps.Scraper = scraper

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("GAMEFAQS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "gamefaqs.db"
	}
	dir := filepath.Join(home, ".gamefaqs")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "gamefaqs.db")
}
