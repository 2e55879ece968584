package scrape_test

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/chrisism/gamefaqs"
	"github.com/chrisism/gamefaqs/mock"
	"github.com/chrisism/gamefaqs/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixtures modeled on the site's markup.

const searchPage = `<!DOCTYPE html>
<html><body>
<div class="sr_row">
	<div class="sr_cell sr_platform">Platform</div>
	<div class="sr_cell sr_title">Game</div>
	<div class="sr_cell sr_release">Release</div>
</div>
<div class="sr_row">
	<div class="sr_cell sr_platform">SNES</div>
	<div class="sr_cell sr_title"><a class="log_search" data-row="1" data-col="1" data-pid="588324" href="/snes/588324-castlevania-dracula-x">Castlevania: Dracula X</a></div>
	<div class="sr_cell sr_release">1995</div>
</div>
<div class="sr_row">
	<div class="sr_cell sr_platform">NES</div>
	<div class="sr_cell sr_title"><a class="log_search" data-row="2" data-col="1" data-pid="578318" href="/nes/578318-castlevania">Castlevania</a></div>
	<div class="sr_cell sr_release">1987</div>
</div>
<div class="sr_row">
	<div class="sr_cell sr_platform">NES</div>
	<div class="sr_cell sr_title"><a class="log_search" data-row="3" data-col="1" data-pid="563408" href="/nes/563408-castlevania-ii-simons-quest">Castlevania II: Simon's Quest</a></div>
	<div class="sr_cell sr_release">1988</div>
</div>
</body></html>`

const detailPage = `<!DOCTYPE html>
<html><body>
<ol>
	<li><b>Genre:</b> <a href="/nes/category/163-action">Action</a> &raquo; <a href="/nes/category/188-platformer">Platformer</a></li>
	<li><b>Developer/Publisher: </b><a href="/company/2374-konami">Konami</a></li>
	<li><b>Release:</b> <a href="/nes/578318-castlevania/data">May 1, 1987</a></li>
	<li><b>ESRB:</b> e10</li>
</ol>
<script type="application/ld+json">
{"name":"Castlevania","description":"Enter the castle of Count Dracula.","keywords":""}
</script>
</body></html>`

const gameDataPage = `<!DOCTYPE html>
<html><body>
<ol class="game_info">
	<li><b>Local Players:</b> 1 Player</li>
	<li><b>Online Players:</b> No Online Play</li>
</ol>
</body></html>`

const imagesPage = `<!DOCTYPE html>
<html><body>
<div class="head"><h2 class="title">Game Box Shots</h2></div>
<div class="body"><table class="contrib"><tr>
	<td class="thumb"><div class="img boxshot">
		<a href="/nes/578318-castlevania/images/135454">
			<img class="img100 imgboxart" src="https://gamefaqs.akamaized.net/box/2/7/6/2276_thumb.jpg" alt="Castlevania (US)" />
		</a>
	</div></td>
</tr></table></div>
<div class="head"><h2 class="title">GameFAQs Reader Screenshots</h2></div>
<div class="body"><table class="contrib"><tr>
	<td class="thumb"><a href="/nes/578318-castlevania/images/21">
		<img class="imgboxart" src="https://gamefaqs.akamaized.net/screens/1_thm.jpg" />
	</a></td>
	<td class="thumb"><a href="/nes/578318-castlevania/images/29">
		<img class="imgboxart" src="https://gamefaqs.akamaized.net/screens/2_thm.jpg" />
	</a></td>
</tr></table></div>
<div class="head"><h2 class="title">Game Videos</h2></div>
<div class="body"><table class="contrib"><tr>
	<td class="thumb"><a href="/nes/578318-castlevania/videos/1">
		<img class="imgboxart" src="https://gamefaqs.akamaized.net/videos/1_thm.jpg" />
	</a></td>
</tr></table></div>
</body></html>`

const boxDetailPage = `<!DOCTYPE html>
<html><body>
<img class="full_boxshot cte" data-img-width="640" data-img-height="908" data-img="https://gamefaqs.akamaized.net/box/2/7/6/2276_front.jpg?region=us" src="https://gamefaqs.akamaized.net/box/2/7/6/2276_thumb.jpg" alt="Castlevania Box Front" />
<img class="full_boxshot cte" data-img-width="640" data-img-height="908" data-img="https://gamefaqs.akamaized.net/box/2/7/6/2276_back.jpg" src="https://gamefaqs.akamaized.net/box/2/7/6/2276_back_thumb.jpg" alt="Castlevania Box Back" />
</body></html>`

// fixtureFetcher routes URLs to fixtures and counts fetches per URL.
type fixtureFetcher struct {
	fetches map[string]int
}

func newFixtureFetcher() *fixtureFetcher {
	return &fixtureFetcher{fetches: make(map[string]int)}
}

func (f *fixtureFetcher) serve(url string) (string, int, error) {
	f.fetches[url]++
	switch {
	case strings.Contains(url, "/search_advanced"):
		return searchPage, http.StatusOK, nil
	case strings.Contains(url, "/578318-castlevania/images/135454"):
		return boxDetailPage, http.StatusOK, nil
	case strings.Contains(url, "/578318-castlevania/images"):
		return imagesPage, http.StatusOK, nil
	case strings.Contains(url, "/578318-castlevania/data"):
		return gameDataPage, http.StatusOK, nil
	case strings.Contains(url, "/578318-castlevania"):
		return detailPage, http.StatusOK, nil
	}
	return "not found", http.StatusNotFound, nil
}

func (f *fixtureFetcher) total() int {
	n := 0
	for _, c := range f.fetches {
		n += c
	}
	return n
}

func newTestScraper(t *testing.T, opts ...scrape.Option) (*scrape.Scraper, *fixtureFetcher) {
	t.Helper()
	fixtures := newFixtureFetcher()
	fetcher := &mock.Fetcher{
		GetFn: func(_ context.Context, url string) (string, int, error) {
			return fixtures.serve(url)
		},
		PostFn: func(_ context.Context, url string, _ url.Values) (string, int, error) {
			return fixtures.serve(url)
		},
	}
	return scrape.New(fetcher, opts...), fixtures
}

func castlevaniaNES() *gamefaqs.Candidate {
	return &gamefaqs.Candidate{
		ID:              "/nes/578318-castlevania",
		GameName:        "Castlevania",
		Platform:        "nes",
		ScraperPlatform: gamefaqs.ToSiteCode("nes"),
	}
}

func TestScraper_Search(t *testing.T) {
	t.Parallel()

	t.Run("ranks the exact match first with platform bonus", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestScraper(t)
		st := gamefaqs.NewStatus()

		candidates := s.Search(context.Background(), "Castlevania", "castlevania", "nes", st)

		assert.True(t, st.OK)
		require.Len(t, candidates, 3)
		assert.Equal(t, "Castlevania", candidates[0].GameName)
		assert.Equal(t, 4, candidates[0].Score)
		assert.Equal(t, "/nes/578318-castlevania", candidates[0].ID)
		assert.Equal(t, "Castlevania / NES", candidates[0].DisplayName)

		// Simon's Quest collects substring and platform bonuses; Dracula X
		// only the substring bonus.
		assert.Equal(t, "Castlevania II: Simon's Quest", candidates[1].GameName)
		assert.Equal(t, 3, candidates[1].Score)
		assert.Equal(t, "Castlevania: Dracula X", candidates[2].GameName)
		assert.Equal(t, 2, candidates[2].Score)
	})

	t.Run("without platform filter the exact match scores 3", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestScraper(t)
		st := gamefaqs.NewStatus()

		candidates := s.Search(context.Background(), "Castlevania", "", "", st)

		require.NotEmpty(t, candidates)
		assert.Equal(t, "Castlevania", candidates[0].GameName)
		assert.Equal(t, 3, candidates[0].Score)
	})

	t.Run("scores are non-increasing", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestScraper(t)
		candidates := s.Search(context.Background(), "Castlevania", "", "nes", gamefaqs.NewStatus())

		for i := 1; i < len(candidates); i++ {
			assert.GreaterOrEqual(t, candidates[i-1].Score, candidates[i].Score)
		}
	})

	t.Run("transport failure annotates status and returns empty", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			PostFn: func(_ context.Context, _ string, _ url.Values) (string, int, error) {
				return "", http.StatusServiceUnavailable, nil
			},
		}
		s := scrape.New(fetcher)
		st := gamefaqs.NewStatus()

		candidates := s.Search(context.Background(), "Castlevania", "", "nes", st)

		assert.Empty(t, candidates)
		assert.False(t, st.OK)
		assert.Equal(t, gamefaqs.ETRANSPORT, st.Code)
	})

	t.Run("second identical search is served from the candidate cache", func(t *testing.T) {
		t.Parallel()

		s, fixtures := newTestScraper(t)
		ctx := context.Background()

		first := s.Search(ctx, "Castlevania", "", "nes", gamefaqs.NewStatus())
		second := s.Search(ctx, "Castlevania", "", "nes", gamefaqs.NewStatus())

		assert.Equal(t, first, second)
		assert.Equal(t, 1, fixtures.total())
	})

	t.Run("empty term falls back to the rom name", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestScraper(t)
		candidates := s.Search(context.Background(), "", "Castlevania", "nes", gamefaqs.NewStatus())
		require.NotEmpty(t, candidates)
		assert.Equal(t, "Castlevania", candidates[0].GameName)
	})

	t.Run("disabled scraper returns empty without fetching", func(t *testing.T) {
		t.Parallel()

		s, fixtures := newTestScraper(t, scrape.WithDisabled(true))
		st := gamefaqs.NewStatus()

		candidates := s.Search(context.Background(), "Castlevania", "", "nes", st)

		assert.Empty(t, candidates)
		assert.True(t, st.OK)
		assert.Zero(t, fixtures.total())
	})
}

func TestScraper_FetchMetadata(t *testing.T) {
	t.Parallel()

	t.Run("extracts fields from detail and data pages", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestScraper(t)
		st := gamefaqs.NewStatus()

		md := s.FetchMetadata(context.Background(), castlevaniaNES(), st)

		assert.True(t, st.OK)
		assert.Equal(t, "Castlevania", md.Title)
		assert.Equal(t, "1987", md.Year)
		assert.Equal(t, "Action", md.Genre)
		assert.Equal(t, "Konami", md.Developer)
		assert.Equal(t, "Enter the castle of Count Dracula.", md.Plot)
		assert.Equal(t, gamefaqs.ESRBEveryone10, md.ESRB)
		assert.Equal(t, "1", md.Players)
		assert.Equal(t, gamefaqs.DefaultPlayers, md.OnlinePlayers)
		assert.Equal(t, "May 1, 1987", md.Extra["release"])
		assert.Equal(t, "Konami", md.Extra["publisher"])
	})

	t.Run("is idempotent and memoized", func(t *testing.T) {
		t.Parallel()

		s, fixtures := newTestScraper(t)
		ctx := context.Background()

		first := s.FetchMetadata(ctx, castlevaniaNES(), gamefaqs.NewStatus())
		fetchesAfterFirst := fixtures.total()
		second := s.FetchMetadata(ctx, castlevaniaNES(), gamefaqs.NewStatus())

		assert.Equal(t, first, second)
		assert.Equal(t, fetchesAfterFirst, fixtures.total(), "second call must trigger zero fetches")
	})

	t.Run("transport failure yields defaults and annotates status", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			GetFn: func(_ context.Context, _ string) (string, int, error) {
				return "", http.StatusNotFound, nil
			},
		}
		s := scrape.New(fetcher)
		st := gamefaqs.NewStatus()

		md := s.FetchMetadata(context.Background(), castlevaniaNES(), st)

		assert.False(t, st.OK)
		assert.Equal(t, gamefaqs.ESRBPending, md.ESRB)
		assert.Equal(t, gamefaqs.DefaultPlayers, md.Players)
		assert.Empty(t, md.Year)
	})

	t.Run("missing fields take defaults without aborting extraction", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			GetFn: func(_ context.Context, u string) (string, int, error) {
				if strings.HasSuffix(u, "/data") {
					return "<html></html>", http.StatusOK, nil
				}
				// Only a genre line; everything else missing.
				return `<li><b>Genre:</b> <a href="/x">Action</a></li>`, http.StatusOK, nil
			},
		}
		s := scrape.New(fetcher)
		st := gamefaqs.NewStatus()

		md := s.FetchMetadata(context.Background(), castlevaniaNES(), st)

		assert.True(t, st.OK)
		assert.Equal(t, "Action", md.Genre)
		assert.Empty(t, md.Year)
		assert.Empty(t, md.Developer)
		assert.Equal(t, gamefaqs.ESRBPending, md.ESRB)
	})

	t.Run("disabled scraper returns defaults without fetching", func(t *testing.T) {
		t.Parallel()

		s, fixtures := newTestScraper(t, scrape.WithDisabled(true))
		md := s.FetchMetadata(context.Background(), castlevaniaNES(), gamefaqs.NewStatus())

		assert.Empty(t, md.Title)
		assert.Zero(t, fixtures.total())
	})
}

func TestScraper_FetchAllAssets(t *testing.T) {
	t.Parallel()

	t.Run("segments, classifies and emits typed assets", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestScraper(t)
		st := gamefaqs.NewStatus()

		assets := s.FetchAllAssets(context.Background(), castlevaniaNES(), st)

		assert.True(t, st.OK)
		// Box block: front + back from one entry. Screenshots block: first
		// entry emits Snapshot and Title, second emits Snapshot only. The
		// video block is excluded.
		require.Len(t, assets, 5)

		fronts := gamefaqs.FilterAssets(assets, gamefaqs.KindBoxFront)
		require.Len(t, fronts, 1)
		assert.Equal(t, "Castlevania (US)", fronts[0].DisplayName)
		assert.Equal(t, "/nes/578318-castlevania/images/135454", fronts[0].DetailPageURL)
		assert.True(t, fronts[0].OnListingPage)

		require.Len(t, gamefaqs.FilterAssets(assets, gamefaqs.KindBoxBack), 1)

		titles := gamefaqs.FilterAssets(assets, gamefaqs.KindTitle)
		require.Len(t, titles, 1)
		assert.Equal(t, "/nes/578318-castlevania/images/21", titles[0].DetailPageURL)

		snaps := gamefaqs.FilterAssets(assets, gamefaqs.KindSnapshot)
		require.Len(t, snaps, 2)
	})

	t.Run("called twice triggers exactly one page fetch", func(t *testing.T) {
		t.Parallel()

		s, fixtures := newTestScraper(t)
		ctx := context.Background()

		first := s.FetchAllAssets(ctx, castlevaniaNES(), gamefaqs.NewStatus())
		second := s.FetchAllAssets(ctx, castlevaniaNES(), gamefaqs.NewStatus())

		assert.Equal(t, first, second)
		assert.Equal(t, 1, fixtures.fetches["https://gamefaqs.gamespot.com/nes/578318-castlevania/images"])
		assert.Equal(t, 1, fixtures.total())
	})

	t.Run("transport failure annotates status and returns empty", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			GetFn: func(_ context.Context, _ string) (string, int, error) {
				return "", http.StatusBadGateway, nil
			},
		}
		s := scrape.New(fetcher)
		st := gamefaqs.NewStatus()

		assets := s.FetchAllAssets(context.Background(), castlevaniaNES(), st)

		assert.Empty(t, assets)
		assert.False(t, st.OK)
	})
}

func TestScraper_FetchAssets(t *testing.T) {
	t.Parallel()

	t.Run("filters the cached batch without extra fetches", func(t *testing.T) {
		t.Parallel()

		s, fixtures := newTestScraper(t)
		ctx := context.Background()
		cand := castlevaniaNES()

		fronts := s.FetchAssets(ctx, cand, gamefaqs.KindBoxFront, gamefaqs.NewStatus())
		snaps := s.FetchAssets(ctx, cand, gamefaqs.KindSnapshot, gamefaqs.NewStatus())
		titles := s.FetchAssets(ctx, cand, gamefaqs.KindTitle, gamefaqs.NewStatus())

		assert.Len(t, fronts, 1)
		assert.Len(t, snaps, 2)
		assert.Len(t, titles, 1)
		assert.Equal(t, 1, fixtures.total(), "listing page is read once per candidate")
	})
}

func TestScraper_ResolveAssetURL(t *testing.T) {
	t.Parallel()

	boxFront := &gamefaqs.Asset{
		Kind:          gamefaqs.KindBoxFront,
		DetailPageURL: "/nes/578318-castlevania/images/135454",
	}

	t.Run("returns the first image matching the asset kind", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestScraper(t)
		st := gamefaqs.NewStatus()

		resolved, logURL := s.ResolveAssetURL(context.Background(), boxFront, st)

		assert.True(t, st.OK)
		assert.Equal(t, "https://gamefaqs.akamaized.net/box/2/7/6/2276_front.jpg?region=us", resolved)
		assert.Equal(t, "https://gamefaqs.akamaized.net/box/2/7/6/2276_front.jpg", logURL)
	})

	t.Run("box back resolves to the back image", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestScraper(t)
		back := &gamefaqs.Asset{
			Kind:          gamefaqs.KindBoxBack,
			DetailPageURL: "/nes/578318-castlevania/images/135454",
		}

		resolved, _ := s.ResolveAssetURL(context.Background(), back, gamefaqs.NewStatus())
		assert.Equal(t, "https://gamefaqs.akamaized.net/box/2/7/6/2276_back.jpg", resolved)
	})

	t.Run("no matching image resolves to empty without failing", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestScraper(t)
		title := &gamefaqs.Asset{
			Kind:          gamefaqs.KindTitle,
			DetailPageURL: "/nes/578318-castlevania/images/135454",
		}
		st := gamefaqs.NewStatus()

		resolved, logURL := s.ResolveAssetURL(context.Background(), title, st)

		assert.Empty(t, resolved)
		assert.Empty(t, logURL)
		assert.True(t, st.OK, "unresolvable is a normal outcome, not an error")
	})

	t.Run("transport failure annotates status", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			GetFn: func(_ context.Context, _ string) (string, int, error) {
				return "", http.StatusForbidden, nil
			},
		}
		s := scrape.New(fetcher)
		st := gamefaqs.NewStatus()

		resolved, _ := s.ResolveAssetURL(context.Background(), boxFront, st)

		assert.Empty(t, resolved)
		assert.False(t, st.OK)
	})
}

func TestScraper_ResolveAssetExtension(t *testing.T) {
	t.Parallel()

	s, _ := newTestScraper(t)
	st := gamefaqs.NewStatus()

	ext := s.ResolveAssetExtension(context.Background(), nil, "https://gamefaqs.akamaized.net/box/2276_front.jpg?region=us", st)
	assert.Equal(t, "jpg", ext)

	ext = s.ResolveAssetExtension(context.Background(), nil, "https://gamefaqs.akamaized.net/box/2276_front", st)
	assert.Empty(t, ext)
}

func TestScraper_Capabilities(t *testing.T) {
	t.Parallel()

	s, _ := newTestScraper(t)

	assert.Equal(t, "GameFAQs", s.Name())
	assert.True(t, s.SupportsMetadata())
	for _, k := range []gamefaqs.Kind{
		gamefaqs.KindTitle, gamefaqs.KindSnapshot,
		gamefaqs.KindBoxFront, gamefaqs.KindBoxBack,
	} {
		assert.True(t, s.SupportsAssetKind(k))
	}
	assert.False(t, s.SupportsAssetKind(gamefaqs.Kind(99)))
}
