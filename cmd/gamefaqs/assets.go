package main

import (
	"fmt"

	"github.com/chrisism/gamefaqs"
)

// Run executes the assets command.
func (c *AssetsCmd) Run(deps *Dependencies) error {
	cand := &gamefaqs.Candidate{ID: c.ID}
	st := gamefaqs.NewStatus()

	var assets []gamefaqs.Asset
	if c.Kind != "" {
		kind, err := gamefaqs.ParseKind(c.Kind)
		if err != nil {
			return fmt.Errorf("%s", gamefaqs.ErrorMessage(err))
		}
		assets = deps.Scraper.FetchAssets(deps.Ctx, cand, kind, st)
	} else {
		assets = deps.Scraper.FetchAllAssets(deps.Ctx, cand, st)
	}
	if !st.OK {
		return fmt.Errorf("asset fetch failed: %s", st.Message)
	}

	if len(assets) == 0 {
		fmt.Fprintln(deps.Stdout, "No assets found.")
		return nil
	}

	for _, a := range assets {
		fmt.Fprintf(deps.Stdout, "%-8s  %s  %s\n", a.Kind, a.DetailPageURL, a.DisplayName)
	}

	return nil
}
