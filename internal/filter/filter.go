// Package filter narrows a project list by tag and free-text search
package filter

import (
	"sort"
	"strings"

	"folio.dev/internal/models"
)

// All is the tag sentinel that disables tag filtering
const All = "Tout"

// Query selects projects. A zero Query matches everything
type Query struct {
	Tag    string
	Search string
}

// NormalizeSearch trims and lowercases a raw search input
func NormalizeSearch(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// AllTags reports whether the query skips tag filtering
func (q Query) AllTags() bool {
	return q.Tag == "" || q.Tag == All
}

// Match reports whether a single project satisfies the query
func (q Query) Match(p models.Project) bool {
	if !q.AllTags() && !p.HasTag(q.Tag) {
		return false
	}
	term := NormalizeSearch(q.Search)
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), term) {
		return true
	}
	for _, t := range p.Tech {
		if strings.Contains(strings.ToLower(t), term) {
			return true
		}
	}
	return false
}

// Apply returns the projects matching q, in their original order.
// The input slice is never modified
func Apply(list []models.Project, q Query) []models.Project {
	out := make([]models.Project, 0, len(list))
	for _, p := range list {
		if q.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Tags returns every distinct tag of the list, sorted
func Tags(list []models.Project) []string {
	seen := make(map[string]struct{})
	for _, p := range list {
		for _, t := range p.Tech {
			seen[t] = struct{}{}
		}
	}
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// Buttons builds the filter bar: the All sentinel first, then every tag
func Buttons(list []models.Project, active string) []models.FilterButton {
	if active == "" {
		active = All
	}
	tags := append([]string{All}, Tags(list)...)
	buttons := make([]models.FilterButton, len(tags))
	for i, t := range tags {
		buttons[i] = models.FilterButton{Tag: t, Label: t, Active: t == active}
	}
	return buttons
}
