// Package templates renders the HTML pages
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"folio.dev/internal/filter"
	"folio.dev/internal/services"
	"folio.dev/internal/view"
)

//go:embed *.html
var files embed.FS

// Links builds the URLs pages point at. The server and the static export
// lay out pages differently
type Links interface {
	Home() string
	Project(slug string) string
	Static(name string) string
	Asset(name string) string
}

// ServerLinks lays out URLs for the HTTP server mounted at Base
type ServerLinks struct {
	Base string
}

func (l ServerLinks) base() string {
	b := strings.TrimSpace(l.Base)
	if b == "" {
		return "/"
	}
	if !strings.HasSuffix(b, "/") {
		b += "/"
	}
	return b
}

// Home is the listing URL
func (l ServerLinks) Home() string { return l.base() }

// Project is the detail URL of slug
func (l ServerLinks) Project(slug string) string {
	return l.base() + "project?slug=" + url.QueryEscape(slug)
}

// Static is the URL of a file under the static dir
func (l ServerLinks) Static(name string) string { return l.base() + "static/" + name }

// Asset resolves a project image path; absolute URLs pass through
func (l ServerLinks) Asset(name string) string { return resolveAsset(l.base(), name) }

// StaticLinks lays out URLs for the exported site; Depth is how many
// directories below the site root the page lives
type StaticLinks struct {
	Depth int
}

func (l StaticLinks) prefix() string { return strings.Repeat("../", l.Depth) }

// Home is the relative path to index.html
func (l StaticLinks) Home() string { return l.prefix() + "index.html" }

// Project is the relative path to project/<slug>.html
func (l StaticLinks) Project(slug string) string {
	return l.prefix() + path.Join("project", slug+".html")
}

// Static is the relative path to a copied static file
func (l StaticLinks) Static(name string) string { return l.prefix() + "static/" + name }

// Asset resolves a project image path against the site root
func (l StaticLinks) Asset(name string) string { return resolveAsset(l.prefix(), name) }

func resolveAsset(prefix, name string) string {
	if name == "" || strings.HasPrefix(name, "/") || strings.Contains(name, "://") {
		return name
	}
	return prefix + strings.TrimPrefix(name, "./")
}

// Site is the data shared by every page
type Site struct {
	SiteTitle string
	Year      int
	IsStatic  bool
	Links     Links
}

// NewSite returns the page chrome for links
func NewSite(title string, links Links, static bool) Site {
	return Site{SiteTitle: title, Year: time.Now().Year(), IsStatic: static, Links: links}
}

// Link helpers for the templates
func (s Site) Home() string                 { return s.Links.Home() }
func (s Site) ProjectURL(slug string) string { return s.Links.Project(slug) }
func (s Site) Static(name string) string     { return s.Links.Static(name) }
func (s Site) Asset(name string) string      { return s.Links.Asset(name) }

// ListingData feeds listing.html
type ListingData struct {
	Site
	view.Page
}

// AllTags reports whether no tag filter is active
func (d ListingData) AllTags() bool {
	return d.Listing.Tag == "" || d.Listing.Tag == filter.All
}

// InWindow reports whether the i-th filtered project is on screen
func (d ListingData) InWindow(i int) bool {
	if d.IsStatic {
		return true
	}
	return i >= d.Listing.Page.Start && i < d.Listing.Page.End
}

// DetailData feeds detail.html
type DetailData struct {
	Site
	*services.Detail
}

// MessageData feeds message.html
type MessageData struct {
	Site
	Heading string
	Message string
}

// Renderer holds the parsed page templates
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page together with the layout
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{"listing", "detail", "message"} {
		t, err := template.ParseFS(files, "layout.html", name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

func (r *Renderer) render(w io.Writer, page string, data any) error {
	if err := r.pages[page].ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}
	return nil
}

// Listing renders the projects page
func (r *Renderer) Listing(w io.Writer, d ListingData) error { return r.render(w, "listing", d) }

// Detail renders a project page
func (r *Renderer) Detail(w io.Writer, d DetailData) error { return r.render(w, "detail", d) }

// Message renders an inline message page (not found, load error)
func (r *Renderer) Message(w io.Writer, d MessageData) error { return r.render(w, "message", d) }
