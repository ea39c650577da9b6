package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"folio.dev/internal/slug"
)

// ErrNoDetails is returned when a project has no details document
var ErrNoDetails = errors.New("no details for project")

// Store loads details documents from <dir>/projects/<slug>.md and caches
// the rendered result
type Store struct {
	dir      string
	renderer *Renderer

	mu    sync.RWMutex
	cache map[string]*Document
}

// NewStore creates a Store rooted at dir
func NewStore(dir string, renderer *Renderer) *Store {
	return &Store{
		dir:      dir,
		renderer: renderer,
		cache:    make(map[string]*Document),
	}
}

// Dir returns the content root
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the details file location for a slug
func (s *Store) Path(projectSlug string) string {
	return filepath.Join(s.dir, "projects", projectSlug+".md")
}

// Get returns the rendered details for a slug
func (s *Store) Get(projectSlug string) (*Document, error) {
	if !slug.Valid(projectSlug) {
		return nil, fmt.Errorf("%w: invalid slug %q", ErrNoDetails, projectSlug)
	}

	s.mu.RLock()
	doc, cached := s.cache[projectSlug]
	s.mu.RUnlock()
	if cached {
		return doc, nil
	}

	data, err := os.ReadFile(s.Path(projectSlug))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoDetails, projectSlug)
		}
		return nil, fmt.Errorf("failed to read details for %s: %w", projectSlug, err)
	}

	doc, err = s.renderer.Render(data)
	if err != nil {
		return nil, fmt.Errorf("failed to render details for %s: %w", projectSlug, err)
	}

	s.mu.Lock()
	s.cache[projectSlug] = doc
	s.mu.Unlock()

	return doc, nil
}

// Purge drops every cached document
func (s *Store) Purge() {
	s.mu.Lock()
	s.cache = make(map[string]*Document)
	s.mu.Unlock()
}
