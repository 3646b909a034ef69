// Package web serves the reelgrid UI: a server-rendered movie grid backed by
// the hosted recommender API. One process renders one logical browser
// session; every user action triggers a single top-to-bottom render pass of
// the current view state.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/reelgrid/reelgrid/config"
	"github.com/reelgrid/reelgrid/movieapi"
	"github.com/reelgrid/reelgrid/view"
)

// Presentation limits for the grids. Search and feed cap at 24 cards, the
// recommendation panel requests 18.
const (
	searchLimit = 24
	feedLimit   = 24
	recLimit    = 18

	minColumns = 4
	maxColumns = 8
)

// Recommender is the slice of the movieapi client the UI consumes.
type Recommender interface {
	Search(ctx context.Context, query string) ([]movieapi.Movie, error)
	HomeFeed(ctx context.Context, category string, limit int) ([]movieapi.Movie, error)
	MovieDetail(ctx context.Context, tmdbID int64) (*movieapi.Detail, error)
	RecommendByGenre(ctx context.Context, tmdbID int64, limit int) ([]movieapi.Movie, error)
}

// Server renders the web UI
type Server struct {
	api     Recommender
	session *view.Session
	ui      config.UIConfig
	logger  zerolog.Logger
	router  chi.Router
}

// NewServer creates the UI server and mounts its routes
func NewServer(api Recommender, session *view.Session, ui config.UIConfig, logger zerolog.Logger) *Server {
	s := &Server{
		api:     api,
		session: session,
		ui:      ui,
		logger:  logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(httprate.LimitByIP(120, time.Minute))

	r.Get("/", s.handleIndex)
	r.Get("/open", s.handleOpen)
	r.Get("/back", s.handleBack)
	r.Get("/healthz", s.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	s.router = r
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
