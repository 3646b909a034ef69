package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/reelgrid/reelgrid/cards"
	"github.com/reelgrid/reelgrid/config"
	"github.com/reelgrid/reelgrid/movieapi"
	"github.com/reelgrid/reelgrid/view"
)

// page is the full-page view model handed to the template
type page struct {
	Categories []string
	Category   string
	Columns    int
	Warning    string
	Error      string
	Home       *homePage
	Details    *detailPage
}

type homePage struct {
	Query   string
	Heading string
	Grid    *grid
}

type detailPage struct {
	Detail     *movieapi.Detail
	Recs       grid
	RecsNotice string
}

// prefs are the per-request presentation controls: feed category and grid
// column count, defaulting from config
type prefs struct {
	category string
	columns  int
}

func (s *Server) prefsFrom(r *http.Request) prefs {
	p := prefs{category: s.ui.Category, columns: s.ui.Columns}

	if c := r.URL.Query().Get("category"); config.ValidCategory(c) {
		p.category = c
	}
	if v := r.URL.Query().Get("cols"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.columns = n
		}
	}
	if p.columns < minColumns {
		p.columns = minColumns
	}
	if p.columns > maxColumns {
		p.columns = maxColumns
	}
	return p
}

func (s *Server) newPage(p prefs) page {
	return page{
		Categories: config.Categories,
		Category:   p.category,
		Columns:    p.columns,
	}
}

// handleIndex runs one full render pass for the current view state
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	state := s.session.Current()
	p := s.prefsFrom(r)

	switch state.Screen {
	case view.Details:
		s.renderDetails(w, r, state, p)
	default:
		s.renderHome(w, r, p)
	}
}

// renderHome renders either search results or the category feed. A failed or
// empty fetch is fatal for the pass: the error notice renders and nothing
// else is requested.
func (s *Server) renderHome(w http.ResponseWriter, r *http.Request, p prefs) {
	ctx := r.Context()
	pg := s.newPage(p)

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	pg.Home = &homePage{Query: query}

	if query != "" {
		movies, err := s.api.Search(ctx, query)
		if err != nil {
			s.logger.Warn().Err(err).Str("query", query).Msg("Search failed")
			pg.Error = fmt.Sprintf("Search failed: %v", err)
			s.render(w, pg)
			return
		}
		if len(movies) == 0 {
			pg.Error = "Search failed: no results"
			s.render(w, pg)
			return
		}

		list := cards.Cap(cards.Normalize(movies), searchLimit)
		g := newGrid(list, p.columns)
		pg.Home.Grid = &g
		s.render(w, pg)
		return
	}

	movies, err := s.api.HomeFeed(ctx, p.category, feedLimit)
	if err != nil || len(movies) == 0 {
		if err != nil {
			s.logger.Warn().Err(err).Str("category", p.category).Msg("Home feed failed")
		}
		pg.Error = "Could not load home feed."
		s.render(w, pg)
		return
	}

	g := newGrid(cards.Normalize(movies), p.columns)
	pg.Home.Heading = titleCase(p.category)
	pg.Home.Grid = &g
	s.render(w, pg)
}

// renderDetails renders one movie's metadata, then its recommendation grid.
// The two fetches run sequentially; a detail failure is fatal for the pass
// and skips the recommendation request, a recommendation failure only
// downgrades that section to a notice.
func (s *Server) renderDetails(w http.ResponseWriter, r *http.Request, state view.State, p prefs) {
	ctx := r.Context()
	pg := s.newPage(p)

	if !state.Valid() {
		pg.Warning = "No movie selected."
		s.render(w, pg)
		return
	}

	detail, err := s.api.MovieDetail(ctx, state.SelectedID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("tmdb_id", state.SelectedID).Msg("Detail fetch failed")
		pg.Error = "Could not load movie details."
		s.render(w, pg)
		return
	}

	dp := &detailPage{Detail: detail}

	recs, err := s.api.RecommendByGenre(ctx, state.SelectedID, recLimit)
	if err != nil || len(recs) == 0 {
		if err != nil {
			s.logger.Debug().Err(err).Int64("tmdb_id", state.SelectedID).Msg("Recommendation fetch failed")
		}
		dp.RecsNotice = "No recommendations available."
	} else {
		dp.Recs = newGrid(cards.Normalize(recs), p.columns)
	}

	pg.Details = dp
	s.render(w, pg)
}

// handleOpen transitions to the Details view for the card's movie id. Ids
// that do not parse to a positive integer leave the state untouched.
func (s *Server) handleOpen(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err == nil {
		_, err = s.session.GoDetails(id)
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("id", r.URL.Query().Get("id")).Msg("Ignoring open action")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleBack returns to the Home view, clearing the selection
func (s *Server) handleBack(w http.ResponseWriter, r *http.Request) {
	s.session.GoHome()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// titleCase renders a feed category for the section heading, e.g.
// "top_rated" -> "Top Rated".
func titleCase(category string) string {
	words := strings.Split(category, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
