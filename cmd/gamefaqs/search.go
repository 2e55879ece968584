package main

import (
	"fmt"

	"github.com/chrisism/gamefaqs"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	st := gamefaqs.NewStatus()
	candidates := deps.Scraper.Search(deps.Ctx, c.Term, "", c.Platform, st)
	if !st.OK {
		return fmt.Errorf("search failed: %s", st.Message)
	}

	if len(candidates) == 0 {
		fmt.Fprintln(deps.Stdout, "No candidates found.")
		return nil
	}

	for _, cand := range candidates {
		fmt.Fprintf(deps.Stdout, "%d  %s  %s\n", cand.Score, cand.ID, cand.DisplayName)
	}

	return nil
}
