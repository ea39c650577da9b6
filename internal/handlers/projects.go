package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"folio.dev/internal/catalog"
	"folio.dev/internal/metrics"
	"folio.dev/internal/models"
	"folio.dev/internal/services"
	"folio.dev/internal/view"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	metrics        *metrics.Metrics
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, m *metrics.Metrics) *ProjectHandler {
	return &ProjectHandler{projectService: ps, metrics: m}
}

// ListProjects handles GET /api/projects?tag=&q=&page=&width=&intent=
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	page, err := h.projectService.Listing(requestState(r), view.IntentFromValues(r.URL.Query()), "/api/projects")
	if err != nil {
		respondError(w, r, http.StatusServiceUnavailable, "Projects unavailable")
		return
	}
	h.count("api_projects")
	respondJSON(w, r, http.StatusOK, page.Listing)
}

// GetProject handles GET /api/projects/{slug}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	project, err := h.projectService.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			if h.metrics != nil {
				h.metrics.IncrementNotFound()
			}
			respondError(w, r, http.StatusNotFound, "Project not found")
			return
		}
		respondError(w, r, http.StatusServiceUnavailable, "Projects unavailable")
		return
	}
	nav, _ := h.projectService.Neighbors(slug)

	h.count("api_project")
	respondJSON(w, r, http.StatusOK, struct {
		Project    models.ProjectView `json:"project"`
		Navigation models.Navigation  `json:"navigation"`
	}{project, nav})
}

// ListTags handles GET /api/tags
func (h *ProjectHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.projectService.Tags()
	if err != nil {
		respondError(w, r, http.StatusServiceUnavailable, "Projects unavailable")
		return
	}
	h.count("api_tags")
	respondJSON(w, r, http.StatusOK, tags)
}

func (h *ProjectHandler) count(page string) {
	if h.metrics != nil {
		h.metrics.IncrementPageView(page)
	}
}
