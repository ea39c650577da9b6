package services

import (
	"errors"

	"folio.dev/internal/catalog"
	"folio.dev/internal/filter"
	"folio.dev/internal/models"
	"folio.dev/internal/view"
)

// ErrUnavailable is returned when no catalog has been loaded
var ErrUnavailable = errors.New("project catalog unavailable")

// ProjectService handles project-related operations
type ProjectService struct {
	catalog *catalog.Holder
}

// NewProjectService creates a new ProjectService
func NewProjectService(h *catalog.Holder) *ProjectService {
	return &ProjectService{catalog: h}
}

func (s *ProjectService) current() (*catalog.Catalog, error) {
	c := s.catalog.Get()
	if c == nil {
		return nil, ErrUnavailable
	}
	return c, nil
}

// GetAll returns all projects with their slugs
func (s *ProjectService) GetAll() ([]models.ProjectView, error) {
	c, err := s.current()
	if err != nil {
		return nil, err
	}
	return c.Views(), nil
}

// List returns the projects matching q, in source order
func (s *ProjectService) List(q filter.Query) ([]models.ProjectView, error) {
	c, err := s.current()
	if err != nil {
		return nil, err
	}
	return view.Views(filter.Apply(c.Projects(), q)), nil
}

// Listing applies intent to state and renders the listing page model.
// The returned page carries the resulting state
func (s *ProjectService) Listing(state view.State, intent view.Intent, path string) (view.Page, error) {
	c, err := s.current()
	if err != nil {
		return view.Page{}, err
	}
	list := c.Projects()
	state = state.Apply(intent, list)
	return view.RenderPage(state, list, path), nil
}

// GetBySlug returns a specific project by slug
func (s *ProjectService) GetBySlug(slug string) (models.ProjectView, error) {
	c, err := s.current()
	if err != nil {
		return models.ProjectView{}, err
	}
	p, _, err := c.Lookup(slug)
	return p, err
}

// Neighbors returns the previous/next projects around slug
func (s *ProjectService) Neighbors(slug string) (models.Navigation, error) {
	c, err := s.current()
	if err != nil {
		return models.Navigation{}, err
	}
	return c.Neighbors(slug)
}

// Tags returns every tag, sorted
func (s *ProjectService) Tags() ([]string, error) {
	c, err := s.current()
	if err != nil {
		return nil, err
	}
	return c.Tags(), nil
}
