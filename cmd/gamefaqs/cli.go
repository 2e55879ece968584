package main

import (
	"context"
	"io"

	"github.com/chrisism/gamefaqs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Scraper gamefaqs.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log every scraper operation"`

	Search   SearchCmd   `cmd:"" help:"Search for game candidates"`
	Metadata MetadataCmd `cmd:"" help:"Fetch metadata for a game page"`
	Assets   AssetsCmd   `cmd:"" help:"List artwork assets for a game page"`
	Resolve  ResolveCmd  `cmd:"" help:"Resolve an asset page to its full-resolution image URL"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Term     string `arg:"" help:"Game title to search for"`
	Platform string `short:"p" help:"Host platform name (e.g. nes, snes, megadrive)"`
}

// MetadataCmd is the "metadata" subcommand.
type MetadataCmd struct {
	ID    string `arg:"" help:"Site-relative game path (e.g. /nes/578318-castlevania)"`
	Title string `short:"t" help:"Game title to record with the metadata"`
}

// AssetsCmd is the "assets" subcommand.
type AssetsCmd struct {
	ID   string `arg:"" help:"Site-relative game path"`
	Kind string `short:"k" help:"Filter by asset kind (title, snap, boxfront, boxback)"`
}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	Page string `arg:"" help:"Site-relative asset detail page path"`
	Kind string `short:"k" default:"boxfront" help:"Asset kind to resolve"`
}
