// Package export writes the whole site as static files
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"folio.dev/internal/catalog"
	"folio.dev/internal/content"
	"folio.dev/internal/filter"
	"folio.dev/internal/models"
	"folio.dev/internal/services"
	"folio.dev/internal/slug"
	"folio.dev/internal/templates"
	"folio.dev/internal/view"
)

// Options controls an export run
type Options struct {
	OutputDir string
	Title     string
	StaticDir string // copied to <out>/static when set and present
	AssetsDir string // copied to <out>/assets when set and present
	Workers   int
}

// Exporter renders every page of a catalog to disk
type Exporter struct {
	catalog *catalog.Catalog
	store   *content.Store
	pages   *templates.Renderer
	logger  *zap.Logger
}

// New creates an Exporter. Detail pages live one directory below the site
// root, so store should render with a "../" base path
func New(c *catalog.Catalog, store *content.Store, pages *templates.Renderer, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{catalog: c, store: store, pages: pages, logger: logger}
}

// Result summarizes what was written
type Result struct {
	Projects int
	Tags     int
}

// Run writes index.html, one tags/<tag>.html per tag, one
// project/<slug>.html per project and projects.json under opts.OutputDir
func (e *Exporter) Run(ctx context.Context, opts Options) (Result, error) {
	if opts.OutputDir == "" {
		return Result{}, errors.New("output directory is required")
	}
	if opts.Title == "" {
		opts.Title = "Portfolio"
	}
	for _, dir := range []string{opts.OutputDir, filepath.Join(opts.OutputDir, "project"), filepath.Join(opts.OutputDir, "tags")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Result{}, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}

	list := e.catalog.Projects()
	tags := e.catalog.Tags()
	files := TagFiles(tags)

	g.Go(func() error {
		return e.writeListing(opts, list, files, filter.All, 0)
	})
	for _, tag := range tags {
		tag := tag
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return e.writeListing(opts, list, files, tag, 1)
		})
	}

	for _, s := range e.catalog.Slugs() {
		s := s
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return e.writeDetail(opts, s)
		})
	}

	g.Go(func() error {
		return writeJSON(filepath.Join(opts.OutputDir, "projects.json"), e.catalog.Views())
	})

	for name, src := range map[string]string{"static": opts.StaticDir, "assets": opts.AssetsDir} {
		if src == "" {
			continue
		}
		name, src := name, src
		g.Go(func() error {
			return copyTree(src, filepath.Join(opts.OutputDir, name))
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{Projects: e.catalog.Len(), Tags: len(tags)}
	e.logger.Info("site exported",
		zap.String("dir", opts.OutputDir),
		zap.Int("projects", res.Projects),
		zap.Int("tags", res.Tags),
	)
	return res, nil
}

// TagFiles maps every tag to its page under tags/. Tags whose slugs
// collide ("C" and "C++") get a numeric suffix
func TagFiles(tags []string) map[string]string {
	files := make(map[string]string, len(tags))
	seen := make(map[string]int, len(tags))
	for _, tag := range tags {
		name := slug.Generate(tag)
		if name == "" {
			name = "tag"
		}
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s-%d", name, n)
		}
		files[tag] = "tags/" + name + ".html"
	}
	return files
}

func (e *Exporter) writeListing(opts Options, list []models.Project, files map[string]string, tag string, depth int) error {
	links := templates.StaticLinks{Depth: depth}
	path := filepath.Join(opts.OutputDir, "index.html")
	if depth > 0 {
		path = filepath.Join(opts.OutputDir, filepath.FromSlash(files[tag]))
	}

	// Everything is on one page: a static site has no server-side paging
	state := view.State{Tag: tag}
	page := view.RenderPage(state, list, links.Home())
	page.Listing.Visible = page.Listing.Projects
	for i := range page.Buttons {
		if page.Buttons[i].Tag == filter.All {
			page.Buttons[i].URL = links.Home()
			continue
		}
		page.Buttons[i].URL = strings.Repeat("../", depth) + files[page.Buttons[i].Tag]
	}

	return writePage(path, func(w io.Writer) error {
		return e.pages.Listing(w, templates.ListingData{
			Site: templates.NewSite(opts.Title, links, true),
			Page: page,
		})
	})
}

func (e *Exporter) writeDetail(opts Options, s string) error {
	project, _, err := e.catalog.Lookup(s)
	if err != nil {
		return err
	}
	nav, err := e.catalog.Neighbors(s)
	if err != nil {
		return err
	}
	detail := &services.Detail{Project: project, Navigation: nav}

	doc, err := e.store.Get(s)
	switch {
	case err == nil:
		detail.Details = doc
	case errors.Is(err, content.ErrNoDetails):
	default:
		return err
	}

	path := filepath.Join(opts.OutputDir, "project", s+".html")
	return writePage(path, func(w io.Writer) error {
		return e.pages.Detail(w, templates.DetailData{
			Site:   templates.NewSite(opts.Title, templates.StaticLinks{Depth: 1}, true),
			Detail: detail,
		})
	})
}

func writePage(path string, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// copyTree copies src into dst; a missing src is skipped
func copyTree(src, dst string) error {
	if _, err := os.Stat(src); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}
