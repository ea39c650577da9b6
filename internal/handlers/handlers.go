package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"folio.dev/internal/config"
	"folio.dev/internal/logging"
	"folio.dev/internal/metrics"
	"folio.dev/internal/middleware"
	"folio.dev/internal/services"
	"folio.dev/internal/templates"
)

// Deps are the collaborators the routes need
type Deps struct {
	Projects *services.ProjectService
	Details  *services.DetailService
	Pages    *templates.Renderer
	Metrics  *metrics.Metrics
	Logger   *zap.Logger
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, d Deps) http.Handler {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	links := templates.ServerLinks{Base: cfg.BasePath}

	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Recovery(d.Logger))
	r.Use(chimw.Timeout(cfg.RequestTimeout))

	pages := NewPageHandler(d.Projects, d.Details, d.Pages, d.Metrics, links)
	projectHandler := NewProjectHandler(d.Projects, d.Metrics)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{slug}", projectHandler.GetProject)
		r.Get("/tags", projectHandler.ListTags)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	if d.Metrics != nil {
		r.Handle("/metrics", d.Metrics.Handler())
	}

	// Pages
	r.Get("/", pages.Listing)
	r.Get("/index.html", pages.Listing)
	r.Get("/project", pages.Detail)
	r.Get("/project.html", pages.Detail)
	r.Get("/project/{slug}", pages.Detail)

	// Static files
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServer(http.Dir(cfg.StaticDir))))
	r.Handle("/assets/*", http.StripPrefix("/assets", http.FileServer(http.Dir(cfg.AssetsDir))))

	base := strings.TrimSuffix(links.Home(), "/")
	if base == "" {
		return r
	}
	root := chi.NewRouter()
	root.Mount(base, r)
	root.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, base+"/", http.StatusFound)
	})
	return root
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.FromContext(r.Context(), nil).Error("error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, r, status, map[string]string{"error": message})
}

// respondHTML renders a page into a buffer, then writes it with status.
// A template failure becomes a plain 500
func respondHTML(w http.ResponseWriter, r *http.Request, status int, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		logging.FromContext(r.Context(), nil).Error("error rendering page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
