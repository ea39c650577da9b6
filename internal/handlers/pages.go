package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"folio.dev/internal/catalog"
	"folio.dev/internal/logging"
	"folio.dev/internal/metrics"
	"folio.dev/internal/services"
	"folio.dev/internal/templates"
	"folio.dev/internal/view"
)

const siteTitle = "Portfolio"

// PageHandler serves the HTML pages
type PageHandler struct {
	projects *services.ProjectService
	details  *services.DetailService
	pages    *templates.Renderer
	metrics  *metrics.Metrics
	links    templates.ServerLinks
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ps *services.ProjectService, ds *services.DetailService, pages *templates.Renderer, m *metrics.Metrics, links templates.ServerLinks) *PageHandler {
	return &PageHandler{projects: ps, details: ds, pages: pages, metrics: m, links: links}
}

func (h *PageHandler) site() templates.Site {
	return templates.NewSite(siteTitle, h.links, false)
}

// Listing handles GET / (query: tag, q, page, width, intent)
func (h *PageHandler) Listing(w http.ResponseWriter, r *http.Request) {
	askViewportWidth(w)
	page, err := h.projects.Listing(requestState(r), view.IntentFromValues(r.URL.Query()), h.links.Home())
	if err != nil {
		logging.FromContext(r.Context(), nil).Error("listing unavailable", zap.Error(err))
		h.message(w, r, http.StatusServiceUnavailable, "Erreur", "Erreur lors du chargement des projets.")
		return
	}

	h.count("listing")
	respondHTML(w, r, http.StatusOK, func(out io.Writer) error {
		return h.pages.Listing(out, templates.ListingData{Site: h.site(), Page: page})
	})
}

// Detail handles GET /project?slug= and GET /project/{slug}
func (h *PageHandler) Detail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		slug = r.URL.Query().Get("slug")
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		h.message(w, r, http.StatusBadRequest, "Aucun projet", "Aucun projet spécifié.")
		return
	}

	detail, err := h.details.Get(slug)
	switch {
	case err == nil:
	case errors.Is(err, catalog.ErrNotFound):
		if h.metrics != nil {
			h.metrics.IncrementNotFound()
		}
		h.message(w, r, http.StatusNotFound, "Introuvable", "Projet introuvable.")
		return
	default:
		logging.FromContext(r.Context(), nil).Error("project unavailable", zap.String("slug", slug), zap.Error(err))
		h.message(w, r, http.StatusServiceUnavailable, "Erreur",
			"Erreur lors du chargement du projet. Assurez-vous que projects.json existe.")
		return
	}

	h.count("detail")
	respondHTML(w, r, http.StatusOK, func(out io.Writer) error {
		return h.pages.Detail(out, templates.DetailData{Site: h.site(), Detail: detail})
	})
}

func (h *PageHandler) message(w http.ResponseWriter, r *http.Request, status int, heading, message string) {
	respondHTML(w, r, status, func(out io.Writer) error {
		return h.pages.Message(out, templates.MessageData{Site: h.site(), Heading: heading, Message: message})
	})
}

func (h *PageHandler) count(page string) {
	if h.metrics != nil {
		h.metrics.IncrementPageView(page)
	}
}
