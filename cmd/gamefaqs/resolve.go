package main

import (
	"fmt"

	"github.com/chrisism/gamefaqs"
)

// Run executes the resolve command.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	kind, err := gamefaqs.ParseKind(c.Kind)
	if err != nil {
		return fmt.Errorf("%s", gamefaqs.ErrorMessage(err))
	}

	asset := &gamefaqs.Asset{Kind: kind, DetailPageURL: c.Page}
	st := gamefaqs.NewStatus()

	resolved, _ := deps.Scraper.ResolveAssetURL(deps.Ctx, asset, st)
	if !st.OK {
		return fmt.Errorf("resolve failed: %s", st.Message)
	}
	if resolved == "" {
		fmt.Fprintf(deps.Stdout, "No %s image found on %s\n", kind, c.Page)
		return nil
	}

	ext := deps.Scraper.ResolveAssetExtension(deps.Ctx, asset, resolved, st)
	fmt.Fprintf(deps.Stdout, "%s (%s)\n", resolved, ext)

	return nil
}
