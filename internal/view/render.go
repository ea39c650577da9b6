package view

import (
	"folio.dev/internal/filter"
	"folio.dev/internal/models"
	"folio.dev/internal/slug"
)

// Dot is one carousel page indicator
type Dot struct {
	Index  int
	Active bool
	URL    string
}

// Button is a filter bar entry with the URL that selects it
type Button struct {
	models.FilterButton
	URL string
}

// Page is the listing plus the navigation URLs derived from the state
type Page struct {
	models.Listing
	State   State
	Buttons []Button
	Dots    []Dot
	PrevURL string
	NextURL string
}

// Views attaches the derived slug to every project
func Views(list []models.Project) []models.ProjectView {
	out := make([]models.ProjectView, len(list))
	for i, p := range list {
		out[i] = models.ProjectView{Slug: slug.Generate(p.Title), Project: p}
	}
	return out
}

// Render is the pure listing render: filter, then page, then describe
func Render(s State, list []models.Project) models.Listing {
	filtered := filter.Apply(list, s.Query())
	p := s.Pager(list)
	index := p.Clamp(s.Page)
	start, end := p.Window(index)

	tag := s.Tag
	if tag == "" {
		tag = filter.All
	}

	views := Views(filtered)
	return models.Listing{
		Filters:  filter.Buttons(list, tag),
		Tag:      tag,
		Search:   s.Search,
		Projects: views,
		Visible:  views[start:end],
		Page: models.PageInfo{
			Index:     index,
			Count:     p.PageCount(),
			Size:      p.Visible(),
			Offset:    p.Offset(index),
			Start:     start,
			End:       end,
			SlotWidth: p.SlotWidth(),
		},
		Empty: len(filtered) == 0,
	}
}

// RenderPage renders the listing and the links for every control, all
// pointing at path
func RenderPage(s State, list []models.Project, path string) Page {
	listing := Render(s, list)
	s.Page = listing.Page.Index

	buttons := make([]Button, len(listing.Filters))
	for i, b := range listing.Filters {
		buttons[i] = Button{FilterButton: b, URL: s.Apply(SelectTag(b.Tag), list).Href(path)}
	}

	var dots []Dot
	if !listing.Empty {
		dots = make([]Dot, listing.Page.Count)
		for i := range dots {
			dots[i] = Dot{
				Index:  i,
				Active: i == listing.Page.Index,
				URL:    s.Apply(GoTo(i), list).Href(path),
			}
		}
	}

	return Page{
		Listing: listing,
		State:   s,
		Buttons: buttons,
		Dots:    dots,
		PrevURL: s.Apply(Prev(), list).Href(path),
		NextURL: s.Apply(Next(), list).Href(path),
	}
}
