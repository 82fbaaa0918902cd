// Package site serves the server-rendered dashboard pages.
package site

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gullylabs/gully/internal/domain/types"
	"github.com/gullylabs/gully/pkg/logger"
)

// Error constants
var (
	ErrRender = errors.New("dashboard render failed")
)

// Dependencies required by the dashboard pages.
type Dependencies interface {
	Rankings(ctx context.Context, kind types.Kind, n int) ([]types.Row, error)
	MatchCount(ctx context.Context) (int, error)
	DeliveryCount(ctx context.Context) (int, error)
}

// view describes one sidebar entry and, for ranking views, its kind.
type view struct {
	Label string
	Path  string
	Kind  types.Kind
}

// views lists the sidebar in display order. Home carries no kind.
var views = []view{
	{Label: "Home", Path: "/"},
	{Label: "Best Batsman", Path: "/batsman", Kind: types.KindBatsmen},
	{Label: "Best Bowler", Path: "/bowler", Kind: types.KindBowlers},
	{Label: "Top Teams Performance", Path: "/teams", Kind: types.KindTeams},
}

// Register attaches the dashboard routes to mux.
func Register(_ context.Context, mux *http.ServeMux, deps Dependencies) {
	if mux == nil {
		panic("mux is nil")
	}

	h := newHandler(deps)
	mux.HandleFunc("GET /{$}", h.handleHome)
	for _, v := range views[1:] {
		mux.HandleFunc("GET "+v.Path, h.rankingHandler(v))
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(FS())))
}

// handler renders the dashboard templates.
type handler struct {
	deps Dependencies
	tmpl *template.Template
	log  logger.Logger
}

func newHandler(deps Dependencies) *handler {
	return &handler{
		deps: deps,
		tmpl: template.Must(template.ParseFS(siteFS, "templates/*.tmpl")),
		log:  logger.Get().Named("site"),
	}
}

// navLink is one rendered sidebar entry.
type navLink struct {
	Label  string
	Path   string
	Active bool
}

func nav(activePath string) []navLink {
	links := make([]navLink, 0, len(views))
	for _, v := range views {
		links = append(links, navLink{Label: v.Label, Path: v.Path, Active: v.Path == activePath})
	}
	return links
}

// homeData feeds home.tmpl.
type homeData struct {
	Nav           []navLink
	MatchCount    int
	DeliveryCount int
}

func (h *handler) handleHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	matches, err := h.deps.MatchCount(ctx)
	if err != nil {
		h.fail(w, ctx, "home", err)
		return
	}
	deliveries, err := h.deps.DeliveryCount(ctx)
	if err != nil {
		h.fail(w, ctx, "home", err)
		return
	}

	h.render(w, ctx, "home.tmpl", homeData{
		Nav:           nav("/"),
		MatchCount:    matches,
		DeliveryCount: deliveries,
	})
}

// rankingData feeds ranking.tmpl.
type rankingData struct {
	Nav        []navLink
	Title      string
	Entity     string
	Metric     string
	Top        int
	Min        int
	Max        int
	Rows       []types.Row
	ChartSrc   string
	ExportHref string
}

func (h *handler) rankingHandler(v view) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		top := topFromQuery(r, v.Kind.Bounds())

		rows, err := h.deps.Rankings(ctx, v.Kind, top)
		if err != nil {
			h.fail(w, ctx, v.Path, err)
			return
		}

		bounds := v.Kind.Bounds()
		h.render(w, ctx, "ranking.tmpl", rankingData{
			Nav:        nav(v.Path),
			Title:      v.Kind.Title(top),
			Entity:     v.Kind.EntityLabel(),
			Metric:     v.Kind.MetricLabel(),
			Top:        top,
			Min:        bounds.Min,
			Max:        bounds.Max,
			Rows:       rows,
			ChartSrc:   fmt.Sprintf("/api/charts/%s.png?limit=%d", v.Kind, top),
			ExportHref: fmt.Sprintf("/api/rankings/%s/export?limit=%d", v.Kind, top),
		})
	}
}

// topFromQuery reads ?top=N and forces it into bounds. The pages never
// reject a top value: malformed input falls back to the default and
// out-of-range values are clamped.
func topFromQuery(r *http.Request, bounds types.Bounds) int {
	top := bounds.Default
	if raw := r.URL.Query().Get("top"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			top = v
		}
	}
	return bounds.Clamp(top)
}

func (h *handler) render(w http.ResponseWriter, ctx context.Context, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		h.log.Error(ctx, "template execution failed",
			logger.String("template", name),
			logger.Error(err),
		)
	}
}

func (h *handler) fail(w http.ResponseWriter, ctx context.Context, page string, err error) {
	h.log.Error(ctx, "dashboard page failed",
		logger.String("page", page),
		logger.Error(err),
	)
	http.Error(w, fmt.Sprintf("%v: %v", ErrRender, err), http.StatusInternalServerError)
}
