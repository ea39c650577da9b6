// Package view holds the listing view state, the user intents that change
// it, and the pure render step from state and project list to a listing
package view

import (
	"net/url"
	"strconv"
	"strings"

	"folio.dev/internal/filter"
	"folio.dev/internal/models"
	"folio.dev/internal/pager"
)

// State is everything the listing depends on besides the project list
type State struct {
	Tag    string
	Search string
	Page   int
	Width  int
}

// Query returns the filter part of the state
func (s State) Query() filter.Query {
	return filter.Query{Tag: s.Tag, Search: s.Search}
}

// PageSize is the number of visible slides for the state's viewport
func (s State) PageSize() int {
	return pager.PageSizeForWidth(s.Width)
}

// Pager builds the paging geometry of list under the state's filters
func (s State) Pager(list []models.Project) pager.Pager {
	return pager.New(len(filter.Apply(list, s.Query())), s.PageSize())
}

// IntentKind enumerates user actions on the listing
type IntentKind string

const (
	// IntentNone leaves the state as is, apart from clamping the page
	IntentNone IntentKind = ""
	// IntentSelectTag switches the tag filter
	IntentSelectTag IntentKind = "tag"
	// IntentSearch replaces the search term
	IntentSearch IntentKind = "search"
	// IntentNext moves one page forward, wrapping to the first
	IntentNext IntentKind = "next"
	// IntentPrev moves one page back, wrapping to the last
	IntentPrev IntentKind = "prev"
	// IntentGoTo jumps to a page (a dot)
	IntentGoTo IntentKind = "goto"
	// IntentResize reports a new viewport width
	IntentResize IntentKind = "resize"
)

// Intent is one user action
type Intent struct {
	Kind  IntentKind
	Tag   string
	Term  string
	Page  int
	Width int
}

// SelectTag is a click on a filter button
func SelectTag(tag string) Intent { return Intent{Kind: IntentSelectTag, Tag: tag} }

// SetSearch is an edit of the search box
func SetSearch(term string) Intent { return Intent{Kind: IntentSearch, Term: term} }

// Next is a click on the next arrow
func Next() Intent { return Intent{Kind: IntentNext} }

// Prev is a click on the previous arrow
func Prev() Intent { return Intent{Kind: IntentPrev} }

// GoTo is a click on a page dot
func GoTo(page int) Intent { return Intent{Kind: IntentGoTo, Page: page} }

// Resize is a viewport width change
func Resize(width int) Intent { return Intent{Kind: IntentResize, Width: width} }

// Apply returns the state after intent, given the full project list.
// Changing the tag or the search term starts again from the first page;
// every other transition clamps the page to the new page count
func (s State) Apply(in Intent, list []models.Project) State {
	next := s
	switch in.Kind {
	case IntentSelectTag:
		next.Tag = in.Tag
		next.Page = 0
	case IntentSearch:
		next.Search = strings.TrimSpace(in.Term)
		next.Page = 0
	case IntentNext:
		next.Page = s.Pager(list).Next(s.Page)
	case IntentPrev:
		next.Page = s.Pager(list).Prev(s.Page)
	case IntentGoTo:
		next.Page = in.Page
	case IntentResize:
		next.Width = in.Width
	}
	next.Page = next.Pager(list).Clamp(next.Page)
	return next
}

// Values encodes the state as URL query values, omitting defaults
func (s State) Values() url.Values {
	v := url.Values{}
	if s.Tag != "" && s.Tag != filter.All {
		v.Set("tag", s.Tag)
	}
	if s.Search != "" {
		v.Set("q", s.Search)
	}
	if s.Page > 0 {
		v.Set("page", strconv.Itoa(s.Page))
	}
	if s.Width > 0 {
		v.Set("width", strconv.Itoa(s.Width))
	}
	return v
}

// Href returns path with the state encoded as its query string
func (s State) Href(path string) string {
	q := s.Values().Encode()
	if q == "" {
		return path
	}
	return path + "?" + q
}

// FromValues parses a state from URL query values. Malformed numbers fall
// back to zero. The search term keeps its case; matching folds it
func FromValues(v url.Values) State {
	return State{
		Tag:    strings.TrimSpace(v.Get("tag")),
		Search: strings.TrimSpace(v.Get("q")),
		Page:   atoi(v.Get("page")),
		Width:  atoi(v.Get("width")),
	}
}

// IntentFromValues reads an optional intent carried in the query
// ("intent=next", "intent=prev", "intent=goto&to=2", "intent=resize&to=800")
func IntentFromValues(v url.Values) Intent {
	switch IntentKind(v.Get("intent")) {
	case IntentNext:
		return Next()
	case IntentPrev:
		return Prev()
	case IntentGoTo:
		return GoTo(atoi(v.Get("to")))
	case IntentResize:
		return Resize(atoi(v.Get("to")))
	default:
		return Intent{}
	}
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
