package main

import (
	"fmt"

	"github.com/chrisism/gamefaqs"
)

// Run executes the metadata command.
func (c *MetadataCmd) Run(deps *Dependencies) error {
	cand := &gamefaqs.Candidate{ID: c.ID, GameName: c.Title}
	st := gamefaqs.NewStatus()

	md := deps.Scraper.FetchMetadata(deps.Ctx, cand, st)
	if !st.OK {
		return fmt.Errorf("metadata fetch failed: %s", st.Message)
	}

	fmt.Fprintf(deps.Stdout, "Title:          %s\n", md.Title)
	fmt.Fprintf(deps.Stdout, "Year:           %s\n", md.Year)
	fmt.Fprintf(deps.Stdout, "Genre:          %s\n", md.Genre)
	fmt.Fprintf(deps.Stdout, "Developer:      %s\n", md.Developer)
	fmt.Fprintf(deps.Stdout, "Rating:         %s\n", md.Rating)
	fmt.Fprintf(deps.Stdout, "ESRB:           %s\n", md.ESRB)
	fmt.Fprintf(deps.Stdout, "Players:        %s\n", md.Players)
	fmt.Fprintf(deps.Stdout, "Online players: %s\n", md.OnlinePlayers)
	fmt.Fprintf(deps.Stdout, "Plot:           %s\n", md.Plot)
	for k, v := range md.Extra {
		fmt.Fprintf(deps.Stdout, "%s: %s\n", k, v)
	}

	return nil
}
