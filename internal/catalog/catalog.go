// Package catalog loads the project list and indexes it by slug
package catalog

import (
	"errors"
	"fmt"

	"folio.dev/internal/filter"
	"folio.dev/internal/models"
	"folio.dev/internal/slug"
)

var (
	// ErrNotFound is returned when no project matches a slug
	ErrNotFound = errors.New("project not found")
	// ErrDuplicateSlug is returned when two titles derive the same slug
	ErrDuplicateSlug = errors.New("duplicate project slug")
)

// Catalog is an immutable, ordered snapshot of the projects
type Catalog struct {
	projects []models.Project
	slugs    []string
	index    map[string]int
}

// New indexes list by slug. Titles must derive distinct slugs; a title that
// derives no slug at all (only punctuation, non-Latin script) keeps its place
// in the listing but has no detail page
func New(list []models.Project) (*Catalog, error) {
	c := &Catalog{
		projects: make([]models.Project, len(list)),
		slugs:    make([]string, len(list)),
		index:    make(map[string]int, len(list)),
	}
	copy(c.projects, list)

	for i, p := range c.projects {
		s := slug.Generate(p.Title)
		if s == "" {
			continue
		}
		if j, dup := c.index[s]; dup {
			return nil, fmt.Errorf("%w: %q and %q both map to %q", ErrDuplicateSlug, c.projects[j].Title, p.Title, s)
		}
		c.index[s] = i
		c.slugs[i] = s
	}
	return c, nil
}

// Len returns the number of projects
func (c *Catalog) Len() int {
	return len(c.projects)
}

// Projects returns a copy of the projects in source order
func (c *Catalog) Projects() []models.Project {
	out := make([]models.Project, len(c.projects))
	copy(out, c.projects)
	return out
}

// Views returns every project with its slug, in source order
func (c *Catalog) Views() []models.ProjectView {
	out := make([]models.ProjectView, len(c.projects))
	for i, p := range c.projects {
		out[i] = models.ProjectView{Slug: c.slugs[i], Project: p}
	}
	return out
}

// Slugs returns the slugs of the linkable projects in source order
func (c *Catalog) Slugs() []string {
	out := make([]string, 0, len(c.index))
	for _, s := range c.slugs {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Unlinked returns the projects whose title derives no slug
func (c *Catalog) Unlinked() []models.Project {
	var out []models.Project
	for i, s := range c.slugs {
		if s == "" {
			out = append(out, c.projects[i])
		}
	}
	return out
}

// Lookup resolves a slug to its project and position
func (c *Catalog) Lookup(s string) (models.ProjectView, int, error) {
	i, ok := c.index[s]
	if !ok {
		return models.ProjectView{}, -1, fmt.Errorf("%w: %s", ErrNotFound, s)
	}
	return models.ProjectView{Slug: s, Project: c.projects[i]}, i, nil
}

// Neighbors returns the links to the linkable projects before and after s
// in source order. The first project has no Prev and the last has no Next
func (c *Catalog) Neighbors(s string) (models.Navigation, error) {
	i, ok := c.index[s]
	if !ok {
		return models.Navigation{}, fmt.Errorf("%w: %s", ErrNotFound, s)
	}
	var nav models.Navigation
	for j := i - 1; j >= 0; j-- {
		if c.slugs[j] != "" {
			nav.Prev = &models.Link{Slug: c.slugs[j], Title: c.projects[j].Title}
			break
		}
	}
	for j := i + 1; j < len(c.projects); j++ {
		if c.slugs[j] != "" {
			nav.Next = &models.Link{Slug: c.slugs[j], Title: c.projects[j].Title}
			break
		}
	}
	return nav, nil
}

// Tags returns the sorted set of tags across the catalog
func (c *Catalog) Tags() []string {
	return filter.Tags(c.projects)
}
