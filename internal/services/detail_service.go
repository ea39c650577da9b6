package services

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"folio.dev/internal/content"
	"folio.dev/internal/models"
)

// Detail is everything shown on a project page
type Detail struct {
	Project    models.ProjectView
	Details    *content.Document // nil when the project has no details
	Navigation models.Navigation
}

// DetailService composes a project, its details document and navigation
type DetailService struct {
	projects *ProjectService
	content  *content.Store
	logger   *zap.Logger
}

// NewDetailService creates a new DetailService
func NewDetailService(ps *ProjectService, cs *content.Store, logger *zap.Logger) *DetailService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DetailService{projects: ps, content: cs, logger: logger}
}

// Get resolves slug into a Detail. Missing or broken details are not an
// error: the page simply has no details section
func (s *DetailService) Get(slug string) (*Detail, error) {
	project, err := s.projects.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	nav, err := s.projects.Neighbors(slug)
	if err != nil {
		return nil, fmt.Errorf("navigation for %s: %w", slug, err)
	}

	d := &Detail{Project: project, Navigation: nav}

	doc, err := s.content.Get(slug)
	switch {
	case err == nil:
		d.Details = doc
	case errors.Is(err, content.ErrNoDetails):
	default:
		s.logger.Warn("details unavailable", zap.String("slug", slug), zap.Error(err))
	}
	return d, nil
}
